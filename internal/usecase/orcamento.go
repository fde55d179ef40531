package usecase

import (
	"context"
	"log"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type OrcamentoUseCase struct {
	Repo     OrcamentoRepositoryInterface
	Clientes ClienteRepositoryInterface
	Servicos ServicoRepositoryInterface
}

func NewOrcamentoUseCase(repo OrcamentoRepositoryInterface, clientes ClienteRepositoryInterface, servicos ServicoRepositoryInterface) *OrcamentoUseCase {
	return &OrcamentoUseCase{Repo: repo, Clientes: clientes, Servicos: servicos}
}

// Criar monta o orçamento e persiste cabeçalho e itens sob compensação:
// se os itens falharem, o cabeçalho é removido.
func (uc *OrcamentoUseCase) Criar(ctx context.Context, input CriarOrcamentoInput) (*entity.Orcamento, error) {
	if errs := ValidateCriarOrcamentoInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: juntarErros(errs)}
	}

	if _, err := uc.Clientes.FindByID(ctx, input.ClienteID); err != nil {
		return nil, &DomainError{Code: "CLIENT_NOT_FOUND", Message: "cliente não encontrado"}
	}

	itens, err := uc.montarItens(ctx, input.Itens)
	if err != nil {
		return nil, err
	}

	orcamento, err := entity.NovoOrcamento(input.ClienteID, itens, input.DescontoPercent, input.FormaPagamento)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	txn := NewTransaction()
	txn.AddOperation("create_orcamento", func(ctx context.Context) error {
		return uc.Repo.Create(ctx, orcamento)
	})
	txn.AddCompensation("delete_orcamento", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, orcamento.ID)
	})
	txn.AddOperation("create_itens", func(ctx context.Context) error {
		return uc.Repo.CreateItens(ctx, orcamento)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao salvar o orçamento: " + err.Error(),
		}
	}

	return orcamento, nil
}

// montarItens resolve itens ligados a serviço do catálogo: descrição e
// preço vêm do serviço quando o item não os informa.
func (uc *OrcamentoUseCase) montarItens(ctx context.Context, inputs []ItemOrcamentoInput) ([]entity.ItemOrcamento, error) {
	var itens []entity.ItemOrcamento
	for _, in := range inputs {
		item := entity.ItemOrcamento{
			Descricao:     in.Descricao,
			Quantidade:    in.Quantidade,
			PrecoUnitario: in.PrecoUnitario,
		}

		if in.ServicoID != "" {
			servico, err := uc.Servicos.FindByID(ctx, in.ServicoID)
			if err != nil {
				return nil, &DomainError{Code: "SERVICE_NOT_FOUND", Message: "serviço não encontrado: " + in.ServicoID}
			}
			servicoID := servico.ID
			item.ServicoID = &servicoID
			if item.Descricao == "" {
				item.Descricao = servico.Nome
			}
			if item.PrecoUnitario == 0 {
				item.PrecoUnitario = servico.Preco
			}
		}

		itens = append(itens, item)
	}
	return itens, nil
}

// TransicionarStatus aplica uma transição do funil do orçamento. Uma
// transição bem-sucedida derruba o override manual de estágio do cliente:
// o quadro volta a refletir o status real.
func (uc *OrcamentoUseCase) TransicionarStatus(ctx context.Context, id string, novoStatus string) (*entity.Orcamento, error) {
	status, err := entity.ParseStatus(novoStatus)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_STATUS", Message: err.Error()}
	}

	orcamento, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &DomainError{Code: "QUOTE_NOT_FOUND", Message: "orçamento não encontrado"}
	}

	if !orcamento.Status.PodeTransicionar(status) {
		return nil, &DomainError{
			Code:    "INVALID_TRANSITION",
			Message: "transição inválida: " + string(orcamento.Status) + " → " + string(status),
		}
	}

	if err := uc.Repo.AtualizarStatus(ctx, id, status); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao atualizar o status: " + err.Error()}
	}

	if err := uc.Clientes.LimparEstagioManual(ctx, orcamento.ClienteID); err != nil {
		// Não aborta: o override expira sozinho na próxima derivação.
		log.Printf("⚠️ [ORCAMENTO] Falha ao limpar estágio manual do cliente %s: %v", orcamento.ClienteID, err)
	}

	orcamento.Status = status
	return orcamento, nil
}

func (uc *OrcamentoUseCase) Buscar(ctx context.Context, id string) (*entity.Orcamento, error) {
	orcamento, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &DomainError{Code: "QUOTE_NOT_FOUND", Message: "orçamento não encontrado"}
	}
	return orcamento, nil
}

// Listar filtra opcionalmente por status ("" = todos).
func (uc *OrcamentoUseCase) Listar(ctx context.Context, statusFiltro string) ([]OrcamentoComCliente, error) {
	var status *entity.Status
	if statusFiltro != "" {
		parsed, err := entity.ParseStatus(statusFiltro)
		if err != nil {
			return nil, &DomainError{Code: "INVALID_STATUS", Message: err.Error()}
		}
		status = &parsed
	}

	orcamentos, err := uc.Repo.FindAll(ctx, status)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao listar orçamentos: " + err.Error()}
	}
	return orcamentos, nil
}
