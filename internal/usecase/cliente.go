package usecase

import (
	"context"
	"errors"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
	"github.com/gabrielfarias/autobrilho-backend/internal/format"
)

type ClienteUseCase struct {
	Repo       ClienteRepositoryInterface
	Interacoes InteracaoRepositoryInterface
}

func NewClienteUseCase(repo ClienteRepositoryInterface, interacoes InteracaoRepositoryInterface) *ClienteUseCase {
	return &ClienteUseCase{Repo: repo, Interacoes: interacoes}
}

func (uc *ClienteUseCase) Criar(ctx context.Context, input CriarClienteInput) (*entity.Cliente, error) {
	if errs := ValidateCriarClienteInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: juntarErros(errs)}
	}

	cliente, err := entity.NovoCliente(input.Nome, input.Telefone, input.Veiculo, format.NormalizarPlaca(input.Placa))
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, cliente); err != nil {
		if errors.Is(err, entity.ErrTelefoneJaCadastrado) {
			return nil, &DomainError{Code: "DUPLICATE_PHONE", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao salvar o cliente: " + err.Error()}
	}

	return cliente, nil
}

func (uc *ClienteUseCase) Atualizar(ctx context.Context, id string, input AtualizarClienteInput) (*entity.Cliente, error) {
	cliente, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "cliente não encontrado"}
	}

	if errs := ValidateCriarClienteInput(CriarClienteInput(input)); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: juntarErros(errs)}
	}

	cliente.Nome = input.Nome
	cliente.Telefone = input.Telefone
	cliente.Veiculo = input.Veiculo
	cliente.Placa = format.NormalizarPlaca(input.Placa)

	if err := uc.Repo.Update(ctx, cliente); err != nil {
		if errors.Is(err, entity.ErrTelefoneJaCadastrado) {
			return nil, &DomainError{Code: "DUPLICATE_PHONE", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao atualizar o cliente: " + err.Error()}
	}

	return cliente, nil
}

// Excluir recusa clientes que ainda têm orçamentos.
func (uc *ClienteUseCase) Excluir(ctx context.Context, id string) error {
	qtd, err := uc.Repo.CountOrcamentos(ctx, id)
	if err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao verificar orçamentos do cliente: " + err.Error()}
	}
	if qtd > 0 {
		return &DomainError{
			Code:    "CLIENT_HAS_QUOTES",
			Message: "cliente possui orçamentos e não pode ser excluído",
		}
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao excluir o cliente: " + err.Error()}
	}
	return nil
}

func (uc *ClienteUseCase) Listar(ctx context.Context, busca string) ([]entity.Cliente, error) {
	clientes, err := uc.Repo.FindAll(ctx, busca)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao listar clientes: " + err.Error()}
	}
	return clientes, nil
}

func (uc *ClienteUseCase) Buscar(ctx context.Context, id string) (*entity.Cliente, error) {
	cliente, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "cliente não encontrado"}
	}
	return cliente, nil
}

// RegistrarInteracao grava o contato no histórico e toca o updated_at do
// cliente, o que reinicia a contagem de follow-up.
func (uc *ClienteUseCase) RegistrarInteracao(ctx context.Context, clienteID, tipo, observacao string) (*entity.Interacao, error) {
	if _, err := uc.Repo.FindByID(ctx, clienteID); err != nil {
		return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "cliente não encontrado"}
	}

	interacao, err := entity.NovaInteracao(clienteID, tipo, observacao)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Interacoes.Create(ctx, interacao); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao registrar interação: " + err.Error()}
	}
	if err := uc.Repo.TocarAtualizadoEm(ctx, clienteID); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao atualizar o cliente: " + err.Error()}
	}

	return interacao, nil
}

func (uc *ClienteUseCase) ListarInteracoes(ctx context.Context, clienteID string) ([]entity.Interacao, error) {
	if _, err := uc.Repo.FindByID(ctx, clienteID); err != nil {
		return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "cliente não encontrado"}
	}

	interacoes, err := uc.Interacoes.FindByCliente(ctx, clienteID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao listar interações: " + err.Error()}
	}
	return interacoes, nil
}

// LinkWhatsApp monta o deep link de conversa com o cliente.
func (uc *ClienteUseCase) LinkWhatsApp(ctx context.Context, clienteID, mensagem string) (string, error) {
	cliente, err := uc.Repo.FindByID(ctx, clienteID)
	if err != nil {
		return "", &DomainError{Code: "CLIENT_NOT_FOUND", Message: "cliente não encontrado"}
	}
	return format.LinkWhatsApp(cliente.Telefone, mensagem), nil
}
