package worker

import (
	"context"
	"log"
	"time"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
	"github.com/gabrielfarias/autobrilho-backend/internal/infra/http/middleware"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

// FollowUpWorker recarrega o pipeline e varre os follow-ups em ciclo.
// Cada ciclo rederiva o quadro do banco antes de varrer, então o worker
// enxerga contatos e orçamentos registrados entre um tick e outro.
type FollowUpWorker struct {
	pipeline     *usecase.PipelineUseCase
	scanner      *usecase.FollowUpScanner
	tickInterval time.Duration

	mailer         usecase.EmailService
	emailEquipe    string
	resumoInterval time.Duration
	ultimoResumo   time.Time
}

func NewFollowUpWorker(pipeline *usecase.PipelineUseCase, scanner *usecase.FollowUpScanner, tickInterval time.Duration) *FollowUpWorker {
	if tickInterval <= 0 {
		tickInterval = 5 * time.Minute
	}
	return &FollowUpWorker{
		pipeline:     pipeline,
		scanner:      scanner,
		tickInterval: tickInterval,
	}
}

// ComResumoPorEmail liga o resumo diário: no máximo um e-mail por dia
// para a equipe, e só quando há clientes na lista.
func (w *FollowUpWorker) ComResumoPorEmail(mailer usecase.EmailService, destino string) *FollowUpWorker {
	w.mailer = mailer
	w.emailEquipe = destino
	w.resumoInterval = 24 * time.Hour
	return w
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	log.Printf("🕒 Follow-up Worker iniciado (intervalo %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.varrer(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Follow-up Worker encerrado")
			return
		case <-ticker.C:
			w.varrer(ctx)
		}
	}
}

func (w *FollowUpWorker) varrer(ctx context.Context) {
	if err := w.pipeline.Recarregar(ctx); err != nil {
		log.Printf("❌ Erro ao recarregar o pipeline: %v", err)
		return
	}

	entradas := w.scanner.Scan(ctx)

	atencao := 0
	urgentes := 0
	for _, f := range entradas {
		if f.Nivel == entity.NivelUrgente {
			urgentes++
		} else {
			atencao++
		}
	}
	middleware.SetFollowUpsPendentes(entity.NivelAtencao, atencao)
	middleware.SetFollowUpsPendentes(entity.NivelUrgente, urgentes)

	if len(entradas) > 0 {
		log.Printf("⏱️ Follow-up: %d cliente(s) aguardando contato (%d urgente(s))", len(entradas), urgentes)
		w.enviarResumo(entradas)
	}
}

func (w *FollowUpWorker) enviarResumo(entradas []entity.FollowUp) {
	if w.mailer == nil || w.emailEquipe == "" {
		return
	}
	if time.Since(w.ultimoResumo) < w.resumoInterval {
		return
	}

	if err := w.mailer.SendResumoFollowUps(w.emailEquipe, entradas); err != nil {
		log.Printf("⚠️ Falha ao enviar resumo de follow-up por e-mail: %v", err)
		return
	}
	w.ultimoResumo = time.Now()
	log.Printf("📧 Resumo de follow-up enviado para %s", w.emailEquipe)
}
