package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

func boardCom(cards ...entity.PipelineCard) *Board {
	board := NewBoard()
	board.Recarregar(cards)
	return board
}

func TestScanFlagraClientesParados(t *testing.T) {
	board := boardCom(
		entity.PipelineCard{ClienteID: "c1", Nome: "Ana", Estagio: entity.EstagioLead, DiasSemContato: 2},
		entity.PipelineCard{ClienteID: "c2", Nome: "Bia", Estagio: entity.EstagioOrcamento, DiasSemContato: 3},
		entity.PipelineCard{ClienteID: "c3", Nome: "Caio", Estagio: entity.EstagioNegociacao, DiasSemContato: 10},
		entity.PipelineCard{ClienteID: "c4", Nome: "Davi", Estagio: entity.EstagioFechamento, DiasSemContato: 30},
	)

	scanner := NewFollowUpScanner(board, new(MockClienteRepository), nil)
	entradas := scanner.Scan(context.Background())

	// c1 está abaixo do limiar e c4 é terminal; sobram c2 e c3.
	assert.Len(t, entradas, 2)
	assert.Equal(t, "c2", entradas[0].ClienteID)
	assert.Equal(t, entity.NivelAtencao, entradas[0].Nivel)

	// Cenário: 10 dias parado em negociação é urgente.
	assert.Equal(t, "c3", entradas[1].ClienteID)
	assert.Equal(t, entity.NivelUrgente, entradas[1].Nivel)
}

func TestScanIdempotente(t *testing.T) {
	board := boardCom(
		entity.PipelineCard{ClienteID: "c1", Estagio: entity.EstagioContato, DiasSemContato: 5},
		entity.PipelineCard{ClienteID: "c2", Estagio: entity.EstagioOrcamento, DiasSemContato: 8},
	)

	scanner := NewFollowUpScanner(board, new(MockClienteRepository), nil)
	primeira := scanner.Scan(context.Background())
	segunda := scanner.Scan(context.Background())

	assert.Equal(t, primeira, segunda)
	assert.Equal(t, primeira, scanner.Entradas())
}

func TestScanPublicaApenasNovosUrgentes(t *testing.T) {
	board := boardCom(
		entity.PipelineCard{ClienteID: "c1", Nome: "Ana", Estagio: entity.EstagioContato, DiasSemContato: 9},
		entity.PipelineCard{ClienteID: "c2", Nome: "Bia", Estagio: entity.EstagioOrcamento, DiasSemContato: 4},
	)

	producer := new(MockQueueProducer)
	producer.On("PublishFollowUp", mock.Anything, mock.MatchedBy(func(f entity.FollowUp) bool {
		return f.ClienteID == "c1" && f.Nivel == entity.NivelUrgente
	})).Return(nil).Once()

	scanner := NewFollowUpScanner(board, new(MockClienteRepository), producer)
	scanner.Scan(context.Background())

	// Segunda varredura sem mudança: c1 já era urgente, nada é republicado.
	scanner.Scan(context.Background())

	producer.AssertExpectations(t)
	producer.AssertNumberOfCalls(t, "PublishFollowUp", 1)
}

func TestMarcarContatado(t *testing.T) {
	board := boardCom(
		entity.PipelineCard{ClienteID: "c1", Estagio: entity.EstagioContato, DiasSemContato: 5},
		entity.PipelineCard{ClienteID: "c2", Estagio: entity.EstagioOrcamento, DiasSemContato: 6},
	)

	repo := new(MockClienteRepository)
	repo.On("TocarAtualizadoEm", mock.Anything, "c1").Return(nil).Once()

	scanner := NewFollowUpScanner(board, repo, nil)
	scanner.Scan(context.Background())
	assert.Len(t, scanner.Entradas(), 2)

	assert.NoError(t, scanner.MarcarContatado(context.Background(), "c1"))

	entradas := scanner.Entradas()
	assert.Len(t, entradas, 1)
	assert.Equal(t, "c2", entradas[0].ClienteID)

	// Cenário: updated_at tocado -> na próxima varredura, com o quadro
	// rederivado, o cliente some de vez (dias zerados).
	board.Recarregar([]entity.PipelineCard{
		{ClienteID: "c1", Estagio: entity.EstagioContato, DiasSemContato: 0},
		{ClienteID: "c2", Estagio: entity.EstagioOrcamento, DiasSemContato: 6},
	})
	entradas = scanner.Scan(context.Background())
	assert.Len(t, entradas, 1)
	assert.Equal(t, "c2", entradas[0].ClienteID)

	repo.AssertExpectations(t)
}

func TestMarcarContatadoNaoMexeNaListaJaEntregue(t *testing.T) {
	board := boardCom(
		entity.PipelineCard{ClienteID: "c1", Estagio: entity.EstagioContato, DiasSemContato: 5},
		entity.PipelineCard{ClienteID: "c2", Estagio: entity.EstagioOrcamento, DiasSemContato: 6},
	)

	repo := new(MockClienteRepository)
	repo.On("TocarAtualizadoEm", mock.Anything, "c1").Return(nil).Once()

	scanner := NewFollowUpScanner(board, repo, nil)
	entregues := scanner.Scan(context.Background())
	assert.Len(t, entregues, 2)

	assert.NoError(t, scanner.MarcarContatado(context.Background(), "c1"))

	// O slice devolvido pela varredura é de quem recebeu: segue intacto
	// mesmo depois de o cliente sair da lista interna.
	assert.Len(t, entregues, 2)
	assert.Equal(t, "c1", entregues[0].ClienteID)
	assert.Equal(t, "c2", entregues[1].ClienteID)
	assert.Len(t, scanner.Entradas(), 1)
}
