package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

func TestCriarOrcamentoCalculaTotais(t *testing.T) {
	repo := new(MockOrcamentoRepository)
	clientes := new(MockClienteRepository)
	servicos := new(MockServicoRepository)

	clientes.On("FindByID", mock.Anything, "cli-1").Return(&entity.Cliente{ID: "cli-1", Nome: "Ana"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateItens", mock.Anything, mock.Anything).Return(nil)

	uc := NewOrcamentoUseCase(repo, clientes, servicos)

	// Cenário: subtotal 200 com 10% de desconto -> 20 de desconto, 180 final.
	orcamento, err := uc.Criar(context.Background(), CriarOrcamentoInput{
		ClienteID: "cli-1",
		Itens: []ItemOrcamentoInput{
			{Descricao: "Polimento", Quantidade: 1, PrecoUnitario: 120},
			{Descricao: "Higienização", Quantidade: 2, PrecoUnitario: 40},
		},
		DescontoPercent: 10,
		FormaPagamento:  "PIX",
	})

	assert.NoError(t, err)
	assert.Equal(t, 200.0, orcamento.Subtotal())
	assert.Equal(t, 20.0, orcamento.DescontoValor())
	assert.Equal(t, 180.0, orcamento.ValorTotal)
	assert.Equal(t, entity.StatusOrcamento, orcamento.Status)
	assert.Len(t, orcamento.Itens, 2)
}

func TestCriarOrcamentoResolveServicoDoCatalogo(t *testing.T) {
	repo := new(MockOrcamentoRepository)
	clientes := new(MockClienteRepository)
	servicos := new(MockServicoRepository)

	clientes.On("FindByID", mock.Anything, "cli-1").Return(&entity.Cliente{ID: "cli-1"}, nil)
	servicos.On("FindByID", mock.Anything, "srv-1").Return(&entity.Servico{
		ID: "srv-1", Nome: "Vitrificação", Preco: 800,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateItens", mock.Anything, mock.Anything).Return(nil)

	uc := NewOrcamentoUseCase(repo, clientes, servicos)
	orcamento, err := uc.Criar(context.Background(), CriarOrcamentoInput{
		ClienteID: "cli-1",
		Itens:     []ItemOrcamentoInput{{ServicoID: "srv-1", Quantidade: 1}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Vitrificação", orcamento.Itens[0].Descricao)
	assert.Equal(t, 800.0, orcamento.Itens[0].PrecoUnitario)
	assert.Equal(t, 800.0, orcamento.ValorTotal)
}

func TestCriarOrcamentoCompensaQuandoItensFalham(t *testing.T) {
	repo := new(MockOrcamentoRepository)
	clientes := new(MockClienteRepository)

	clientes.On("FindByID", mock.Anything, "cli-1").Return(&entity.Cliente{ID: "cli-1"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateItens", mock.Anything, mock.Anything).Return(errors.New("constraint violation"))
	repo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	uc := NewOrcamentoUseCase(repo, clientes, new(MockServicoRepository))
	_, err := uc.Criar(context.Background(), CriarOrcamentoInput{
		ClienteID: "cli-1",
		Itens:     []ItemOrcamentoInput{{Descricao: "Lavagem", Quantidade: 1, PrecoUnitario: 50}},
	})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	repo.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTransicionarStatus(t *testing.T) {
	repo := new(MockOrcamentoRepository)
	clientes := new(MockClienteRepository)

	orcamento := &entity.Orcamento{
		ID:        "orc-1",
		ClienteID: "cli-1",
		Status:    entity.StatusOrcamento,
		CriadoEm:  time.Now(),
	}
	repo.On("FindByID", mock.Anything, "orc-1").Return(orcamento, nil)
	repo.On("AtualizarStatus", mock.Anything, "orc-1", entity.StatusAprovado).Return(nil)
	clientes.On("LimparEstagioManual", mock.Anything, "cli-1").Return(nil)

	uc := NewOrcamentoUseCase(repo, clientes, new(MockServicoRepository))
	atualizado, err := uc.TransicionarStatus(context.Background(), "orc-1", "Aprovado")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusAprovado, atualizado.Status)
	clientes.AssertCalled(t, "LimparEstagioManual", mock.Anything, "cli-1")
}

func TestTransicionarStatusInvalido(t *testing.T) {
	repo := new(MockOrcamentoRepository)

	// Finalizado é terminal: nenhuma transição sai dele.
	repo.On("FindByID", mock.Anything, "orc-1").Return(&entity.Orcamento{
		ID: "orc-1", ClienteID: "cli-1", Status: entity.StatusFinalizado,
	}, nil)

	uc := NewOrcamentoUseCase(repo, new(MockClienteRepository), new(MockServicoRepository))

	_, err := uc.TransicionarStatus(context.Background(), "orc-1", "Aprovado")
	assert.Error(t, err)
	assert.True(t, IsDomainError(err))

	_, err = uc.TransicionarStatus(context.Background(), "orc-1", "Inexistente")
	assert.Error(t, err)
}

func TestExcluirClienteComOrcamentos(t *testing.T) {
	repo := new(MockClienteRepository)
	repo.On("CountOrcamentos", mock.Anything, "cli-1").Return(2, nil)

	uc := NewClienteUseCase(repo, nil)
	err := uc.Excluir(context.Background(), "cli-1")

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestExcluirClienteSemOrcamentos(t *testing.T) {
	repo := new(MockClienteRepository)
	repo.On("CountOrcamentos", mock.Anything, "cli-1").Return(0, nil)
	repo.On("Delete", mock.Anything, "cli-1").Return(nil)

	uc := NewClienteUseCase(repo, nil)
	assert.NoError(t, uc.Excluir(context.Background(), "cli-1"))
	repo.AssertExpectations(t)
}
