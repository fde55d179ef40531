package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gabrielfarias/autobrilho-backend/internal/format"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func juntarErros(errs []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}

func ValidateCriarClienteInput(input CriarClienteInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Nome) == "" {
		errors = append(errors, ValidationError{"nome", "is required"})
	} else if len(input.Nome) < 3 {
		errors = append(errors, ValidationError{"nome", "must have at least 3 characters"})
	} else if len(input.Nome) > 200 {
		errors = append(errors, ValidationError{"nome", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Telefone) == "" {
		errors = append(errors, ValidationError{"telefone", "is required"})
	} else if !isValidPhoneNumber(input.Telefone) {
		errors = append(errors, ValidationError{"telefone", "must be a valid phone number"})
	}

	if input.Placa != "" && !format.PlacaValida(input.Placa) {
		errors = append(errors, ValidationError{"placa", "must be a valid plate (ABC-1234 or Mercosul)"})
	}

	return errors
}

func ValidateCriarOrcamentoInput(input CriarOrcamentoInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ClienteID) == "" {
		errors = append(errors, ValidationError{"cliente_id", "is required"})
	}

	if len(input.Itens) == 0 {
		errors = append(errors, ValidationError{"itens", "must have at least one item"})
	}
	for i, item := range input.Itens {
		campo := fmt.Sprintf("itens[%d]", i)
		if strings.TrimSpace(item.Descricao) == "" && item.ServicoID == "" {
			errors = append(errors, ValidationError{campo + ".descricao", "is required for custom items"})
		}
		if item.Quantidade <= 0 {
			errors = append(errors, ValidationError{campo + ".quantidade", "must be positive"})
		}
		if item.PrecoUnitario < 0 {
			errors = append(errors, ValidationError{campo + ".preco_unitario", "must not be negative"})
		}
	}

	if input.DescontoPercent < 0 || input.DescontoPercent > 100 {
		errors = append(errors, ValidationError{"desconto_percent", "must be between 0 and 100"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	return len(cleaned) >= 10 && len(cleaned) <= 11
}
