package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

func TestCalcularQuadroVazio(t *testing.T) {
	repo := new(MockOrcamentoRepository)
	repo.On("SomaEContagemFinalizados", mock.Anything).Return(0.0, 0, nil)

	uc := NewAnalyticsUseCase(NewBoard(), repo)
	snapshot, err := uc.Calcular(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0.0, snapshot.TaxaConversao)
	assert.Equal(t, 0.0, snapshot.ValorPipeline)
	assert.Equal(t, 0.0, snapshot.TicketMedio)
	assert.Equal(t, 0, snapshot.TotalCards)
}

func TestCalcularMetricas(t *testing.T) {
	board := boardCom(
		entity.PipelineCard{ClienteID: "c1", Estagio: entity.EstagioLead, Valor: 0},
		entity.PipelineCard{ClienteID: "c2", Estagio: entity.EstagioNegociacao, Valor: 150},
		entity.PipelineCard{ClienteID: "c3", Estagio: entity.EstagioFechamento, Valor: 300},
		entity.PipelineCard{ClienteID: "c4", Estagio: entity.EstagioFechamento, Valor: 250},
	)

	repo := new(MockOrcamentoRepository)
	repo.On("SomaEContagemFinalizados", mock.Anything).Return(700.0, 4, nil)

	uc := NewAnalyticsUseCase(board, repo)
	snapshot, err := uc.Calcular(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 50.0, snapshot.TaxaConversao) // 2 de 4 fechados
	assert.Equal(t, 700.0, snapshot.ValorPipeline)
	assert.Equal(t, 175.0, snapshot.TicketMedio) // 700 / 4
	assert.Equal(t, 4, snapshot.TotalCards)
	assert.Equal(t, 2, snapshot.CardsFechados)

	assert.GreaterOrEqual(t, snapshot.TaxaConversao, 0.0)
	assert.LessOrEqual(t, snapshot.TaxaConversao, 100.0)
}

func TestUltimoCalculaSobDemanda(t *testing.T) {
	repo := new(MockOrcamentoRepository)
	repo.On("SomaEContagemFinalizados", mock.Anything).Return(100.0, 1, nil).Once()

	uc := NewAnalyticsUseCase(NewBoard(), repo)

	primeiro, err := uc.Ultimo(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, primeiro)

	// Segunda chamada reusa o snapshot guardado, sem nova ida ao banco.
	segundo, err := uc.Ultimo(context.Background())
	assert.NoError(t, err)
	assert.Same(t, primeiro, segundo)
	repo.AssertNumberOfCalls(t, "SomaEContagemFinalizados", 1)
}

func TestCardsPorEstagio(t *testing.T) {
	board := boardCom(
		entity.PipelineCard{ClienteID: "c1", Estagio: entity.EstagioLead},
		entity.PipelineCard{ClienteID: "c2", Estagio: entity.EstagioLead},
		entity.PipelineCard{ClienteID: "c3", Estagio: entity.EstagioFechamento},
	)

	uc := NewAnalyticsUseCase(board, new(MockOrcamentoRepository))
	contagem := uc.CardsPorEstagio()

	assert.Equal(t, 2, contagem[entity.EstagioLead])
	assert.Equal(t, 0, contagem[entity.EstagioContato])
	assert.Equal(t, 1, contagem[entity.EstagioFechamento])
}
