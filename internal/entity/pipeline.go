package entity

import (
	"fmt"
	"time"
)

// Estagio é a coluna do funil de vendas que o cliente ocupa.
type Estagio string

const (
	EstagioLead       Estagio = "lead"
	EstagioContato    Estagio = "contato"
	EstagioOrcamento  Estagio = "orcamento"
	EstagioNegociacao Estagio = "negociacao"
	EstagioFechamento Estagio = "fechamento"
)

// OrdemEstagios é a ordem das colunas no quadro.
var OrdemEstagios = []Estagio{
	EstagioLead,
	EstagioContato,
	EstagioOrcamento,
	EstagioNegociacao,
	EstagioFechamento,
}

func (e Estagio) Valido() bool {
	for _, estagio := range OrdemEstagios {
		if e == estagio {
			return true
		}
	}
	return false
}

// Terminal: cliente já fechou, sai do radar de follow-up.
func (e Estagio) Terminal() bool {
	return e == EstagioFechamento
}

func ParseEstagio(s string) (Estagio, error) {
	estagio := Estagio(s)
	if !estagio.Valido() {
		return "", fmt.Errorf("estágio inválido: %q", s)
	}
	return estagio, nil
}

// PipelineCard é o resumo derivado de um cliente no quadro. Nunca é
// persistido: é regenerado do zero a cada recarga do pipeline.
type PipelineCard struct {
	ClienteID string `json:"cliente_id"`
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone"`
	Veiculo   string `json:"veiculo"`

	// Soma dos orçamentos finalizados do cliente (LTV).
	Valor float64 `json:"valor"`

	// Estagio exibido: o sugerido, ou o manual enquanto ainda vale.
	Estagio Estagio `json:"estagio"`

	// EstagioSugerido é sempre a função pura do status dos orçamentos.
	EstagioSugerido Estagio `json:"estagio_sugerido"`

	UltimoContato  time.Time `json:"ultimo_contato"`
	DiasSemContato int       `json:"dias_sem_contato"`
}

// Níveis de follow-up.
const (
	NivelAtencao = "atencao"
	NivelUrgente = "urgente"
)

// FollowUp é uma entrada efêmera: cliente parado além do limite e ainda
// fora do estágio terminal. A lista é substituída inteira a cada varredura.
type FollowUp struct {
	ClienteID      string  `json:"cliente_id"`
	Nome           string  `json:"nome"`
	Telefone       string  `json:"telefone"`
	Veiculo        string  `json:"veiculo"`
	Estagio        Estagio `json:"estagio"`
	DiasSemContato int     `json:"dias_sem_contato"`
	Nivel          string  `json:"nivel"`
}
