package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status é um enum fechado. O valor gravado no banco é o rótulo
// em português exibido para o usuário.
type Status string

const (
	StatusOrcamento  Status = "Orçamento"
	StatusAprovado   Status = "Aprovado"
	StatusFinalizado Status = "Finalizado"
	StatusCancelado  Status = "Cancelado"
)

func (s Status) Valido() bool {
	switch s {
	case StatusOrcamento, StatusAprovado, StatusFinalizado, StatusCancelado:
		return true
	}
	return false
}

// Terminal: não admite mais transições.
func (s Status) Terminal() bool {
	return s == StatusFinalizado || s == StatusCancelado
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valido() {
		return "", fmt.Errorf("status de orçamento inválido: %q", s)
	}
	return status, nil
}

// transicoes descreve o funil de um orçamento:
// Orçamento -> Aprovado | Cancelado; Aprovado -> Finalizado | Cancelado.
var transicoes = map[Status][]Status{
	StatusOrcamento: {StatusAprovado, StatusCancelado},
	StatusAprovado:  {StatusFinalizado, StatusCancelado},
}

func (s Status) PodeTransicionar(para Status) bool {
	for _, permitido := range transicoes[s] {
		if permitido == para {
			return true
		}
	}
	return false
}

type ItemOrcamento struct {
	ID          string `json:"id"`
	OrcamentoID string `json:"orcamento_id"`

	// ServicoID é opcional: item pode ser um serviço avulso digitado à mão.
	ServicoID *string `json:"servico_id,omitempty"`

	Descricao     string  `json:"descricao"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

func (i ItemOrcamento) Total() float64 {
	return float64(i.Quantidade) * i.PrecoUnitario
}

// Entidade: Orcamento
type Orcamento struct {
	ID        string          `json:"id"`
	ClienteID string          `json:"cliente_id"`
	Status    Status          `json:"status"`

	ValorTotal      float64 `json:"valor_total"`
	DescontoPercent float64 `json:"desconto_percent"`
	FormaPagamento  string  `json:"forma_pagamento"`

	Itens []ItemOrcamento `json:"itens,omitempty"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// Factory
func NovoOrcamento(clienteID string, itens []ItemOrcamento, descontoPercent float64, formaPagamento string) (*Orcamento, error) {
	agora := time.Now()
	o := &Orcamento{
		ID:              uuid.New().String(),
		ClienteID:       clienteID,
		Status:          StatusOrcamento,
		DescontoPercent: descontoPercent,
		FormaPagamento:  formaPagamento,
		CriadoEm:        agora,
		AtualizadoEm:    agora,
	}

	for _, item := range itens {
		item.ID = uuid.New().String()
		item.OrcamentoID = o.ID
		o.Itens = append(o.Itens, item)
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	o.CalcularTotais()
	return o, nil
}

func (o *Orcamento) Validate() error {
	if o.ClienteID == "" {
		return errors.New("cliente é obrigatório")
	}
	if len(o.Itens) == 0 {
		return errors.New("orçamento precisa de ao menos um item")
	}
	if o.DescontoPercent < 0 || o.DescontoPercent > 100 {
		return errors.New("desconto deve estar entre 0 e 100")
	}
	for _, item := range o.Itens {
		if item.Descricao == "" {
			return errors.New("item sem descrição")
		}
		if item.Quantidade <= 0 {
			return errors.New("quantidade do item deve ser positiva")
		}
		if item.PrecoUnitario < 0 {
			return errors.New("preço unitário não pode ser negativo")
		}
	}
	return nil
}

func (o *Orcamento) Subtotal() float64 {
	var subtotal float64
	for _, item := range o.Itens {
		subtotal += item.Total()
	}
	return subtotal
}

func (o *Orcamento) DescontoValor() float64 {
	return o.Subtotal() * o.DescontoPercent / 100
}

// CalcularTotais recalcula ValorTotal a partir dos itens e do desconto.
func (o *Orcamento) CalcularTotais() {
	o.ValorTotal = o.Subtotal() - o.DescontoValor()
}
