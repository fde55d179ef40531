package usecase

import (
	"context"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type ServicoUseCase struct {
	Repo ServicoRepositoryInterface
}

func NewServicoUseCase(repo ServicoRepositoryInterface) *ServicoUseCase {
	return &ServicoUseCase{Repo: repo}
}

func (uc *ServicoUseCase) Criar(ctx context.Context, input CriarServicoInput) (*entity.Servico, error) {
	servico, err := entity.NovoServico(input.Nome, input.Descricao, input.Categoria, input.Preco)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, servico); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao salvar o serviço: " + err.Error()}
	}
	return servico, nil
}

func (uc *ServicoUseCase) Atualizar(ctx context.Context, id string, input CriarServicoInput) (*entity.Servico, error) {
	servico, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &DomainError{Code: "SERVICE_NOT_FOUND", Message: "serviço não encontrado"}
	}

	servico.Nome = input.Nome
	servico.Descricao = input.Descricao
	servico.Categoria = input.Categoria
	servico.Preco = input.Preco
	if err := servico.Validate(); err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Update(ctx, servico); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao atualizar o serviço: " + err.Error()}
	}
	return servico, nil
}

// Desativar faz soft delete: o serviço some do catálogo mas os orçamentos
// antigos continuam apontando para ele.
func (uc *ServicoUseCase) Desativar(ctx context.Context, id string) error {
	servico, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return &DomainError{Code: "SERVICE_NOT_FOUND", Message: "serviço não encontrado"}
	}

	servico.Ativo = false
	if err := uc.Repo.Update(ctx, servico); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao desativar o serviço: " + err.Error()}
	}
	return nil
}

func (uc *ServicoUseCase) Listar(ctx context.Context, apenasAtivos bool) ([]entity.Servico, error) {
	servicos, err := uc.Repo.FindAll(ctx, apenasAtivos)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao listar serviços: " + err.Error()}
	}
	return servicos, nil
}
