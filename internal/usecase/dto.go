package usecase

import (
	"time"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type CriarClienteInput struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Veiculo  string `json:"veiculo"`
	Placa    string `json:"placa"`
}

type AtualizarClienteInput struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Veiculo  string `json:"veiculo"`
	Placa    string `json:"placa"`
}

type ItemOrcamentoInput struct {
	ServicoID     string  `json:"servico_id,omitempty"`
	Descricao     string  `json:"descricao"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

type CriarOrcamentoInput struct {
	ClienteID       string               `json:"cliente_id"`
	Itens           []ItemOrcamentoInput `json:"itens"`
	DescontoPercent float64              `json:"desconto_percent"`
	FormaPagamento  string               `json:"forma_pagamento"`
}

type CriarServicoInput struct {
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria"`
	Preco     float64 `json:"preco"`
}

type CriarDespesaInput struct {
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"` // YYYY-MM-DD; vazio = hoje
}

type MoverCardInput struct {
	ClienteID string `json:"cliente_id"`
	De        string `json:"de"`
	Para      string `json:"para"`
}

// OrcamentoComCliente é a linha da listagem e dos exports em lista.
type OrcamentoComCliente struct {
	entity.Orcamento
	ClienteNome string `json:"cliente_nome"`
}

// DocumentoOrcamento reúne tudo que os geradores de PDF precisam.
type DocumentoOrcamento struct {
	Orcamento *entity.Orcamento
	Cliente   *entity.Cliente
}

// SnapshotAnalytics agrega as métricas do funil: taxa de conversão,
// valor do pipeline e ticket médio dos finalizados.
type SnapshotAnalytics struct {
	TaxaConversao  float64   `json:"taxa_conversao"`
	ValorPipeline  float64   `json:"valor_pipeline"`
	TicketMedio    float64   `json:"ticket_medio"`
	TotalCards     int       `json:"total_cards"`
	CardsFechados  int       `json:"cards_fechados"`
	QtdFinalizados int       `json:"qtd_finalizados"`
	GeradoEm       time.Time `json:"gerado_em"`
}
