package usecase

import (
	"context"
	"time"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type DespesaUseCase struct {
	Repo DespesaRepositoryInterface
}

func NewDespesaUseCase(repo DespesaRepositoryInterface) *DespesaUseCase {
	return &DespesaUseCase{Repo: repo}
}

func (uc *DespesaUseCase) Criar(ctx context.Context, input CriarDespesaInput) (*entity.Despesa, error) {
	var data time.Time
	if input.Data != "" {
		parsed, err := time.Parse("2006-01-02", input.Data)
		if err != nil {
			return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "data inválida, use AAAA-MM-DD"}
		}
		data = parsed
	}

	despesa, err := entity.NovaDespesa(input.Descricao, input.Categoria, input.Valor, data)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, despesa); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao salvar a despesa: " + err.Error()}
	}
	return despesa, nil
}

func (uc *DespesaUseCase) Excluir(ctx context.Context, id string) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao excluir a despesa: " + err.Error()}
	}
	return nil
}

func (uc *DespesaUseCase) Listar(ctx context.Context) ([]entity.Despesa, error) {
	despesas, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao listar despesas: " + err.Error()}
	}
	return despesas, nil
}

// Resumo agrega o total e o gasto por categoria.
func (uc *DespesaUseCase) Resumo(ctx context.Context) (*entity.ResumoDespesas, error) {
	despesas, err := uc.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resumo := &entity.ResumoDespesas{
		PorCategoria:  make(map[string]float64),
		QtdLancamento: len(despesas),
	}
	for _, d := range despesas {
		resumo.Total += d.Valor
		categoria := d.Categoria
		if categoria == "" {
			categoria = "outros"
		}
		resumo.PorCategoria[categoria] += d.Valor
	}
	return resumo, nil
}
