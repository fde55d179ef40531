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

func clienteComOrcamentos(orcamentos ...entity.Orcamento) *entity.Cliente {
	return &entity.Cliente{
		ID:           "cli-1",
		Nome:         "João Silva",
		Telefone:     "11988887777",
		Veiculo:      "Civic 2020",
		AtualizadoEm: time.Now(),
		Orcamentos:   orcamentos,
	}
}

func TestDeriveStageSemOrcamentos(t *testing.T) {
	assert.Equal(t, entity.EstagioLead, DeriveStage(clienteComOrcamentos()))
	assert.Equal(t, entity.EstagioLead, DeriveStage(nil))
}

func TestDeriveStageMapeamento(t *testing.T) {
	agora := time.Now()

	casos := []struct {
		status   entity.Status
		esperado entity.Estagio
	}{
		{entity.StatusOrcamento, entity.EstagioOrcamento},
		{entity.StatusAprovado, entity.EstagioNegociacao},
		{entity.StatusFinalizado, entity.EstagioFechamento},
		{entity.StatusCancelado, entity.EstagioContato},
		{entity.Status("Qualquer"), entity.EstagioContato},
	}

	for _, caso := range casos {
		cliente := clienteComOrcamentos(entity.Orcamento{Status: caso.status, CriadoEm: agora})
		assert.Equal(t, caso.esperado, DeriveStage(cliente), "status %s", caso.status)
	}
}

func TestDeriveStageUsaMaisRecentePorCriacao(t *testing.T) {
	agora := time.Now()

	// Cenário: Aprovado antigo + Finalizado recente, fora de ordem no array.
	cliente := clienteComOrcamentos(
		entity.Orcamento{Status: entity.StatusFinalizado, ValorTotal: 100, CriadoEm: agora},
		entity.Orcamento{Status: entity.StatusAprovado, ValorTotal: 50, CriadoEm: agora.Add(-24 * time.Hour)},
	)
	assert.Equal(t, entity.EstagioFechamento, DeriveStage(cliente))

	// Mesmo conteúdo com o array invertido: a ordem do banco não importa.
	cliente = clienteComOrcamentos(
		entity.Orcamento{Status: entity.StatusAprovado, ValorTotal: 50, CriadoEm: agora.Add(-24 * time.Hour)},
		entity.Orcamento{Status: entity.StatusFinalizado, ValorTotal: 100, CriadoEm: agora},
	)
	assert.Equal(t, entity.EstagioFechamento, DeriveStage(cliente))
}

func TestValorVitalicioSomaApenasFinalizados(t *testing.T) {
	agora := time.Now()
	cliente := clienteComOrcamentos(
		entity.Orcamento{Status: entity.StatusOrcamento, ValorTotal: 80, CriadoEm: agora},
	)

	// Cenário A: só um orçamento aberto -> valor zero.
	assert.Equal(t, 0.0, ValorVitalicio(cliente))

	// Adicionar um finalizado de 100 sobe o valor em exatamente 100.
	cliente.Orcamentos = append(cliente.Orcamentos,
		entity.Orcamento{Status: entity.StatusFinalizado, ValorTotal: 100, CriadoEm: agora})
	assert.Equal(t, 100.0, ValorVitalicio(cliente))

	// Adicionar um não-finalizado não muda nada.
	cliente.Orcamentos = append(cliente.Orcamentos,
		entity.Orcamento{Status: entity.StatusAprovado, ValorTotal: 999, CriadoEm: agora})
	assert.Equal(t, 100.0, ValorVitalicio(cliente))

	// Mais um finalizado soma de novo.
	cliente.Orcamentos = append(cliente.Orcamentos,
		entity.Orcamento{Status: entity.StatusFinalizado, ValorTotal: 50, CriadoEm: agora})
	assert.Equal(t, 150.0, ValorVitalicio(cliente))
}

func TestDiasSemContato(t *testing.T) {
	agora := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DiasSemContato(agora, agora))
	assert.Equal(t, 1, DiasSemContato(agora.Add(-1*time.Hour), agora))
	assert.Equal(t, 1, DiasSemContato(agora.Add(-24*time.Hour), agora))
	assert.Equal(t, 2, DiasSemContato(agora.Add(-25*time.Hour), agora))
	assert.Equal(t, 10, DiasSemContato(agora.Add(-10*24*time.Hour), agora))

	// Determinístico com o mesmo "agora".
	assert.Equal(t,
		DiasSemContato(agora.Add(-50*time.Hour), agora),
		DiasSemContato(agora.Add(-50*time.Hour), agora),
	)

	// Relógio torto: timestamp no futuro não fica negativo.
	assert.Equal(t, 0, DiasSemContato(agora.Add(2*time.Hour), agora))
}

func TestNovoCardOverrideManual(t *testing.T) {
	agora := time.Now()
	marcacao := agora.Add(-1 * time.Hour)
	manual := entity.EstagioNegociacao

	cliente := clienteComOrcamentos(
		entity.Orcamento{Status: entity.StatusOrcamento, CriadoEm: agora.Add(-48 * time.Hour), AtualizadoEm: agora.Add(-48 * time.Hour)},
	)
	cliente.EstagioManual = &manual
	cliente.EstagioManualEm = &marcacao

	// Override mais novo que qualquer orçamento: prevalece.
	card := NovoCard(cliente, agora)
	assert.Equal(t, entity.EstagioNegociacao, card.Estagio)
	assert.Equal(t, entity.EstagioOrcamento, card.EstagioSugerido)

	// Orçamento mexido depois do override: volta o estágio derivado.
	cliente.Orcamentos[0].AtualizadoEm = agora
	card = NovoCard(cliente, agora)
	assert.Equal(t, entity.EstagioOrcamento, card.Estagio)
}

func carregarBoard(t *testing.T, uc *PipelineUseCase, clientes []entity.Cliente) {
	t.Helper()
	repo := uc.Clientes.(*MockClienteRepository)
	repo.On("FindAllComOrcamentos", mock.Anything).Return(clientes, nil).Once()
	assert.NoError(t, uc.Recarregar(context.Background()))
}

func TestMoverCardAtualizaQuadroEPersiste(t *testing.T) {
	repo := new(MockClienteRepository)
	uc := NewPipelineUseCase(repo)

	carregarBoard(t, uc, []entity.Cliente{{ID: "cli-1", Nome: "Ana", AtualizadoEm: time.Now()}})

	repo.On("AtualizarEstagioManual", mock.Anything, "cli-1", entity.EstagioContato, mock.Anything).Return(nil).Once()

	err := uc.MoverCard(context.Background(), MoverCardInput{ClienteID: "cli-1", De: "lead", Para: "contato"})
	assert.NoError(t, err)

	colunas := uc.Board.Colunas()
	assert.Len(t, colunas[entity.EstagioLead], 0)
	assert.Len(t, colunas[entity.EstagioContato], 1)
	assert.Equal(t, entity.EstagioContato, colunas[entity.EstagioContato][0].Estagio)
	repo.AssertExpectations(t)
}

func TestMoverCardReverteQuandoBancoFalha(t *testing.T) {
	repo := new(MockClienteRepository)
	uc := NewPipelineUseCase(repo)

	carregarBoard(t, uc, []entity.Cliente{{ID: "cli-1", Nome: "Ana", AtualizadoEm: time.Now()}})

	repo.On("AtualizarEstagioManual", mock.Anything, "cli-1", entity.EstagioContato, mock.Anything).
		Return(errors.New("connection refused")).Once()

	err := uc.MoverCard(context.Background(), MoverCardInput{ClienteID: "cli-1", De: "lead", Para: "contato"})
	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))

	// Movimento otimista desfeito: o card voltou para lead.
	colunas := uc.Board.Colunas()
	assert.Len(t, colunas[entity.EstagioLead], 1)
	assert.Len(t, colunas[entity.EstagioContato], 0)
}

func TestMoverCardOrigemErrada(t *testing.T) {
	repo := new(MockClienteRepository)
	uc := NewPipelineUseCase(repo)

	carregarBoard(t, uc, []entity.Cliente{{ID: "cli-1", Nome: "Ana", AtualizadoEm: time.Now()}})

	err := uc.MoverCard(context.Background(), MoverCardInput{ClienteID: "cli-1", De: "orcamento", Para: "contato"})
	assert.Error(t, err)
	assert.True(t, IsDomainError(err))

	// Estágio inexistente também é recusado.
	err = uc.MoverCard(context.Background(), MoverCardInput{ClienteID: "cli-1", De: "lead", Para: "inexistente"})
	assert.Error(t, err)
}
