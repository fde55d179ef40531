package usecase

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

// DeriveStage calcula o estágio sugerido de um cliente a partir do status
// do orçamento mais recente. Função pura: não olha o override manual.
//
// Sem orçamentos -> lead. Com orçamentos, vale só o mais recente por data
// de criação (a lista é reordenada aqui, nunca confiamos na ordem que o
// banco devolveu). Cancelado e qualquer status desconhecido caem em
// contato: cliente segue quente, mas sem proposta viva.
func DeriveStage(cliente *entity.Cliente) entity.Estagio {
	if cliente == nil || len(cliente.Orcamentos) == 0 {
		return entity.EstagioLead
	}

	ultimo := orcamentoMaisRecente(cliente.Orcamentos)

	switch ultimo.Status {
	case entity.StatusOrcamento:
		return entity.EstagioOrcamento
	case entity.StatusAprovado:
		return entity.EstagioNegociacao
	case entity.StatusFinalizado:
		return entity.EstagioFechamento
	default:
		return entity.EstagioContato
	}
}

func orcamentoMaisRecente(orcamentos []entity.Orcamento) entity.Orcamento {
	ordenados := make([]entity.Orcamento, len(orcamentos))
	copy(ordenados, orcamentos)

	// Estável: empate em CriadoEm mantém a posição original.
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].CriadoEm.After(ordenados[j].CriadoEm)
	})

	return ordenados[0]
}

// ValorVitalicio soma os orçamentos finalizados do cliente. Orçamentos em
// qualquer outro status contribuem zero.
func ValorVitalicio(cliente *entity.Cliente) float64 {
	if cliente == nil {
		return 0
	}

	var total float64
	for _, o := range cliente.Orcamentos {
		if o.Status == entity.StatusFinalizado {
			total += o.ValorTotal
		}
	}
	return total
}

// DiasSemContato é o teto da diferença bruta em milissegundos dividida por
// um dia. Não é calendário-exato: virar a madrugada pode somar um dia.
// Timestamp no futuro (relógio torto) devolve zero.
func DiasSemContato(ultimoContato, agora time.Time) int {
	diff := agora.Sub(ultimoContato)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// NovoCard monta o card derivado de um cliente. O estágio exibido é o
// sugerido, a menos que exista um override manual ainda válido: o override
// morre assim que algum orçamento do cliente é mexido depois dele.
func NovoCard(cliente *entity.Cliente, agora time.Time) entity.PipelineCard {
	sugerido := DeriveStage(cliente)

	estagio := sugerido
	if cliente.EstagioManual != nil && cliente.EstagioManualEm != nil {
		if !orcamentoMexidoDepois(cliente, *cliente.EstagioManualEm) {
			estagio = *cliente.EstagioManual
		}
	}

	ultimoContato := cliente.AtualizadoEm

	return entity.PipelineCard{
		ClienteID:       cliente.ID,
		Nome:            cliente.Nome,
		Telefone:        cliente.Telefone,
		Veiculo:         cliente.Veiculo,
		Valor:           ValorVitalicio(cliente),
		Estagio:         estagio,
		EstagioSugerido: sugerido,
		UltimoContato:   ultimoContato,
		DiasSemContato:  DiasSemContato(ultimoContato, agora),
	}
}

func orcamentoMexidoDepois(cliente *entity.Cliente, marco time.Time) bool {
	for _, o := range cliente.Orcamentos {
		if o.AtualizadoEm.After(marco) {
			return true
		}
	}
	return false
}

// Board é o quadro em memória. Todo acesso passa por aqui; não existe
// estado de pipeline solto em variável de pacote.
type Board struct {
	mu      sync.RWMutex
	colunas map[entity.Estagio][]entity.PipelineCard
}

func NewBoard() *Board {
	return &Board{colunas: vazias()}
}

func vazias() map[entity.Estagio][]entity.PipelineCard {
	m := make(map[entity.Estagio][]entity.PipelineCard, len(entity.OrdemEstagios))
	for _, e := range entity.OrdemEstagios {
		m[e] = []entity.PipelineCard{}
	}
	return m
}

// Recarregar substitui o quadro inteiro pelos cards recém-derivados.
func (b *Board) Recarregar(cards []entity.PipelineCard) {
	colunas := vazias()
	for _, card := range cards {
		colunas[card.Estagio] = append(colunas[card.Estagio], card)
	}

	b.mu.Lock()
	b.colunas = colunas
	b.mu.Unlock()
}

// Colunas devolve uma cópia do quadro na ordem do funil.
func (b *Board) Colunas() map[entity.Estagio][]entity.PipelineCard {
	b.mu.RLock()
	defer b.mu.RUnlock()

	copia := make(map[entity.Estagio][]entity.PipelineCard, len(b.colunas))
	for estagio, cards := range b.colunas {
		copia[estagio] = append([]entity.PipelineCard(nil), cards...)
	}
	return copia
}

// Cards devolve todos os cards, coluna a coluna na ordem do funil.
func (b *Board) Cards() []entity.PipelineCard {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var todos []entity.PipelineCard
	for _, estagio := range entity.OrdemEstagios {
		todos = append(todos, b.colunas[estagio]...)
	}
	return todos
}

// Mover tira o card da coluna de origem e o põe no fim da coluna destino.
// Exige que o card esteja exatamente na origem informada.
func (b *Board) Mover(clienteID string, de, para entity.Estagio) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	origem := b.colunas[de]
	indice := -1
	for i, card := range origem {
		if card.ClienteID == clienteID {
			indice = i
			break
		}
	}
	if indice == -1 {
		return &DomainError{
			Code:    "CARD_NOT_FOUND",
			Message: "cliente não está na coluna de origem",
		}
	}

	card := origem[indice]
	card.Estagio = para

	b.colunas[de] = append(origem[:indice:indice], origem[indice+1:]...)
	b.colunas[para] = append(b.colunas[para], card)
	return nil
}

// PipelineUseCase recarrega o quadro a partir do banco e trata o
// drag-and-drop de cards.
type PipelineUseCase struct {
	Clientes ClienteRepositoryInterface
	Board    *Board
	Agora    func() time.Time
}

func NewPipelineUseCase(clientes ClienteRepositoryInterface) *PipelineUseCase {
	return &PipelineUseCase{
		Clientes: clientes,
		Board:    NewBoard(),
		Agora:    time.Now,
	}
}

// Recarregar rederiva todos os cards do zero.
func (uc *PipelineUseCase) Recarregar(ctx context.Context) error {
	clientes, err := uc.Clientes.FindAllComOrcamentos(ctx)
	if err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao carregar o pipeline: " + err.Error(),
		}
	}

	agora := uc.Agora()
	cards := make([]entity.PipelineCard, 0, len(clientes))
	for i := range clientes {
		cards = append(cards, NovoCard(&clientes[i], agora))
	}

	uc.Board.Recarregar(cards)
	return nil
}

// MoverCard aplica o movimento otimista no quadro e grava o override
// manual no cliente. Se a gravação falhar, o movimento local é desfeito e
// o chamador recebe o erro para mostrar a notificação de falha.
func (uc *PipelineUseCase) MoverCard(ctx context.Context, input MoverCardInput) error {
	de, err := entity.ParseEstagio(input.De)
	if err != nil {
		return &DomainError{Code: "INVALID_STAGE", Message: err.Error()}
	}
	para, err := entity.ParseEstagio(input.Para)
	if err != nil {
		return &DomainError{Code: "INVALID_STAGE", Message: err.Error()}
	}
	if de == para {
		return nil
	}

	if err := uc.Board.Mover(input.ClienteID, de, para); err != nil {
		return err
	}

	if err := uc.Clientes.AtualizarEstagioManual(ctx, input.ClienteID, para, uc.Agora()); err != nil {
		// Desfaz o movimento otimista: quadro e banco não podem divergir.
		if reverr := uc.Board.Mover(input.ClienteID, para, de); reverr != nil {
			log.Printf("❌ [PIPELINE] Falha ao reverter movimento do cliente %s: %v", input.ClienteID, reverr)
		}
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "não foi possível mover o cliente: " + err.Error(),
		}
	}

	return nil
}
