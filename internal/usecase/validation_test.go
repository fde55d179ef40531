package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCriarClienteInput(t *testing.T) {
	valido := CriarClienteInput{
		Nome:     "Maria Souza",
		Telefone: "(11) 98888-7777",
		Veiculo:  "Onix 2022",
		Placa:    "ABC-1234",
	}
	assert.Empty(t, ValidateCriarClienteInput(valido))

	semNome := valido
	semNome.Nome = ""
	errs := ValidateCriarClienteInput(semNome)
	assert.Len(t, errs, 1)
	assert.Equal(t, "nome", errs[0].Field)

	telefoneCurto := valido
	telefoneCurto.Telefone = "1234"
	errs = ValidateCriarClienteInput(telefoneCurto)
	assert.Len(t, errs, 1)
	assert.Equal(t, "telefone", errs[0].Field)

	placaRuim := valido
	placaRuim.Placa = "ZZZ-99"
	errs = ValidateCriarClienteInput(placaRuim)
	assert.Len(t, errs, 1)
	assert.Equal(t, "placa", errs[0].Field)

	// Placa é opcional.
	semPlaca := valido
	semPlaca.Placa = ""
	assert.Empty(t, ValidateCriarClienteInput(semPlaca))
}

func TestValidateCriarOrcamentoInput(t *testing.T) {
	valido := CriarOrcamentoInput{
		ClienteID: "cli-1",
		Itens: []ItemOrcamentoInput{
			{Descricao: "Lavagem", Quantidade: 1, PrecoUnitario: 50},
		},
		DescontoPercent: 10,
	}
	assert.Empty(t, ValidateCriarOrcamentoInput(valido))

	semItens := valido
	semItens.Itens = nil
	errs := ValidateCriarOrcamentoInput(semItens)
	assert.Len(t, errs, 1)
	assert.Equal(t, "itens", errs[0].Field)

	descontoAlto := valido
	descontoAlto.DescontoPercent = 120
	errs = ValidateCriarOrcamentoInput(descontoAlto)
	assert.Len(t, errs, 1)
	assert.Equal(t, "desconto_percent", errs[0].Field)

	itemRuim := valido
	itemRuim.Itens = []ItemOrcamentoInput{{Descricao: "Cera", Quantidade: 0, PrecoUnitario: -5}}
	errs = ValidateCriarOrcamentoInput(itemRuim)
	assert.Len(t, errs, 2)

	// Item ligado a serviço do catálogo dispensa descrição.
	itemCatalogo := valido
	itemCatalogo.Itens = []ItemOrcamentoInput{{ServicoID: "srv-1", Quantidade: 1}}
	assert.Empty(t, ValidateCriarOrcamentoInput(itemCatalogo))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, isValidPhoneNumber("11988887777"))
	assert.True(t, isValidPhoneNumber("(21) 3333-4444"))
	assert.False(t, isValidPhoneNumber("123"))
	assert.False(t, isValidPhoneNumber("123456789012345"))
}
