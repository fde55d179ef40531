package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

// Limiares padrão de follow-up, em dias sem contato.
const (
	LimiarFollowUpDias = 3
	LimiarUrgenteDias  = 7
)

// FollowUpScanner varre o quadro e mantém a lista de clientes esquecidos.
// A lista é recomposta inteira a cada varredura; não há diff incremental.
type FollowUpScanner struct {
	Board    *Board
	Clientes ClienteRepositoryInterface
	Producer QueueProducerInterface

	LimiarDias    int
	LimiarUrgente int

	mu       sync.RWMutex
	entradas []entity.FollowUp
}

func NewFollowUpScanner(board *Board, clientes ClienteRepositoryInterface, producer QueueProducerInterface) *FollowUpScanner {
	return &FollowUpScanner{
		Board:         board,
		Clientes:      clientes,
		Producer:      producer,
		LimiarDias:    LimiarFollowUpDias,
		LimiarUrgente: LimiarUrgenteDias,
	}
}

// Scan percorre o quadro na ordem das colunas, ignora o estágio terminal
// e substitui a lista de follow-ups. Entradas que viraram urgentes desde a
// varredura anterior são publicadas na fila de notificações.
func (s *FollowUpScanner) Scan(ctx context.Context) []entity.FollowUp {
	urgentesAntes := s.urgentesAtuais()

	var entradas []entity.FollowUp
	for _, card := range s.Board.Cards() {
		if card.Estagio.Terminal() {
			continue
		}
		if card.DiasSemContato < s.LimiarDias {
			continue
		}

		nivel := entity.NivelAtencao
		if card.DiasSemContato >= s.LimiarUrgente {
			nivel = entity.NivelUrgente
		}

		entradas = append(entradas, entity.FollowUp{
			ClienteID:      card.ClienteID,
			Nome:           card.Nome,
			Telefone:       card.Telefone,
			Veiculo:        card.Veiculo,
			Estagio:        card.Estagio,
			DiasSemContato: card.DiasSemContato,
			Nivel:          nivel,
		})
	}

	s.mu.Lock()
	s.entradas = entradas
	s.mu.Unlock()

	s.publicarNovosUrgentes(ctx, urgentesAntes, entradas)
	return entradas
}

func (s *FollowUpScanner) urgentesAtuais() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	urgentes := make(map[string]bool)
	for _, f := range s.entradas {
		if f.Nivel == entity.NivelUrgente {
			urgentes[f.ClienteID] = true
		}
	}
	return urgentes
}

func (s *FollowUpScanner) publicarNovosUrgentes(ctx context.Context, antes map[string]bool, entradas []entity.FollowUp) {
	if s.Producer == nil {
		return
	}
	for _, f := range entradas {
		if f.Nivel != entity.NivelUrgente || antes[f.ClienteID] {
			continue
		}
		if err := s.Producer.PublishFollowUp(ctx, f); err != nil {
			// Notificação é melhor-esforço: a lista em memória já está certa.
			log.Printf("⚠️ [FOLLOWUP] Falha ao publicar alerta do cliente %s: %v", f.ClienteID, err)
		}
	}
}

// Entradas devolve a última lista varrida.
func (s *FollowUpScanner) Entradas() []entity.FollowUp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.FollowUp(nil), s.entradas...)
}

// MarcarContatado tira o cliente da lista e toca o updated_at no banco;
// na próxima varredura o relógio de dias recomeça do zero.
func (s *FollowUpScanner) MarcarContatado(ctx context.Context, clienteID string) error {
	if err := s.Clientes.TocarAtualizadoEm(ctx, clienteID); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "não foi possível registrar o contato: " + err.Error(),
		}
	}

	// Nunca compacta in place: o slice da última varredura já foi entregue
	// para quem chamou Scan e continua sendo lido fora do mutex.
	s.mu.Lock()
	filtradas := make([]entity.FollowUp, 0, len(s.entradas))
	for _, f := range s.entradas {
		if f.ClienteID != clienteID {
			filtradas = append(filtradas, f)
		}
	}
	s.entradas = filtradas
	s.mu.Unlock()

	return nil
}
