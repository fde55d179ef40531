package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

// AnalyticsUseCase agrega métricas do funil sobre o quadro em memória e
// sobre os orçamentos finalizados buscados direto do banco.
type AnalyticsUseCase struct {
	Board      *Board
	Orcamentos OrcamentoRepositoryInterface
	Agora      func() time.Time

	mu     sync.RWMutex
	ultimo *SnapshotAnalytics
}

func NewAnalyticsUseCase(board *Board, orcamentos OrcamentoRepositoryInterface) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		Board:      board,
		Orcamentos: orcamentos,
		Agora:      time.Now,
	}
}

// Calcular recomputa e guarda o snapshot.
func (uc *AnalyticsUseCase) Calcular(ctx context.Context) (*SnapshotAnalytics, error) {
	colunas := uc.Board.Colunas()

	total := 0
	fechados := 0
	var valorPipeline float64
	for estagio, cards := range colunas {
		total += len(cards)
		if estagio.Terminal() {
			fechados += len(cards)
		}
		for _, card := range cards {
			valorPipeline += card.Valor
		}
	}

	// Quadro vazio: conversão zero, sem divisão por zero.
	var taxa float64
	if total > 0 {
		taxa = float64(fechados) / float64(total) * 100
	}

	soma, qtd, err := uc.Orcamentos.SomaEContagemFinalizados(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao calcular ticket médio: " + err.Error(),
		}
	}
	var ticket float64
	if qtd > 0 {
		ticket = soma / float64(qtd)
	}

	snapshot := &SnapshotAnalytics{
		TaxaConversao:  taxa,
		ValorPipeline:  valorPipeline,
		TicketMedio:    ticket,
		TotalCards:     total,
		CardsFechados:  fechados,
		QtdFinalizados: qtd,
		GeradoEm:       uc.Agora(),
	}

	uc.mu.Lock()
	uc.ultimo = snapshot
	uc.mu.Unlock()

	return snapshot, nil
}

// Ultimo devolve o snapshot mais recente; calcula na hora se nunca rodou.
func (uc *AnalyticsUseCase) Ultimo(ctx context.Context) (*SnapshotAnalytics, error) {
	uc.mu.RLock()
	ultimo := uc.ultimo
	uc.mu.RUnlock()

	if ultimo != nil {
		return ultimo, nil
	}
	return uc.Calcular(ctx)
}

// CardsPorEstagio expõe a contagem por coluna para os gauges de métrica.
func (uc *AnalyticsUseCase) CardsPorEstagio() map[entity.Estagio]int {
	colunas := uc.Board.Colunas()
	contagem := make(map[entity.Estagio]int, len(colunas))
	for estagio, cards := range colunas {
		contagem[estagio] = len(cards)
	}
	return contagem
}
