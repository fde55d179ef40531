package worker

import (
	"context"
	"log"
	"time"

	"github.com/gabrielfarias/autobrilho-backend/internal/infra/http/middleware"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

// AnalyticsWorker recalcula o snapshot de métricas do funil em ciclo
// horário e atualiza os gauges por coluna.
type AnalyticsWorker struct {
	analytics    *usecase.AnalyticsUseCase
	tickInterval time.Duration
}

func NewAnalyticsWorker(analytics *usecase.AnalyticsUseCase, tickInterval time.Duration) *AnalyticsWorker {
	if tickInterval <= 0 {
		tickInterval = time.Hour
	}
	return &AnalyticsWorker{
		analytics:    analytics,
		tickInterval: tickInterval,
	}
}

func (w *AnalyticsWorker) Start(ctx context.Context) {
	log.Printf("🕒 Analytics Worker iniciado (intervalo %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.calcular(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Analytics Worker encerrado")
			return
		case <-ticker.C:
			w.calcular(ctx)
		}
	}
}

func (w *AnalyticsWorker) calcular(ctx context.Context) {
	snapshot, err := w.analytics.Calcular(ctx)
	if err != nil {
		log.Printf("❌ Erro ao calcular analytics: %v", err)
		return
	}

	for estagio, qtd := range w.analytics.CardsPorEstagio() {
		middleware.SetPipelineCards(string(estagio), qtd)
	}

	log.Printf("📊 Analytics: conversão %.1f%% | pipeline R$ %.2f | ticket médio R$ %.2f",
		snapshot.TaxaConversao, snapshot.ValorPipeline, snapshot.TicketMedio)
}
