package usecase

import (
	"context"
	"time"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type ClienteRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Cliente) error
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Cliente, error)
	FindAll(ctx context.Context, busca string) ([]entity.Cliente, error)

	// FindAllComOrcamentos traz cada cliente com seus orçamentos já
	// ordenados por criação decrescente.
	FindAllComOrcamentos(ctx context.Context) ([]entity.Cliente, error)

	CountOrcamentos(ctx context.Context, clienteID string) (int, error)

	AtualizarEstagioManual(ctx context.Context, clienteID string, estagio entity.Estagio, em time.Time) error
	LimparEstagioManual(ctx context.Context, clienteID string) error

	// TocarAtualizadoEm grava updated_at = NOW(), o que zera o relógio de
	// follow-up do cliente na próxima varredura.
	TocarAtualizadoEm(ctx context.Context, clienteID string) error
}

type ServicoRepositoryInterface interface {
	Create(ctx context.Context, s *entity.Servico) error
	Update(ctx context.Context, s *entity.Servico) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Servico, error)
	FindAll(ctx context.Context, apenasAtivos bool) ([]entity.Servico, error)
}

type OrcamentoRepositoryInterface interface {
	Create(ctx context.Context, o *entity.Orcamento) error
	CreateItens(ctx context.Context, o *entity.Orcamento) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Orcamento, error)
	FindAll(ctx context.Context, status *entity.Status) ([]OrcamentoComCliente, error)
	AtualizarStatus(ctx context.Context, id string, status entity.Status) error

	// SomaEContagemFinalizados alimenta o ticket médio, buscado direto do
	// banco e não do pipeline em memória.
	SomaEContagemFinalizados(ctx context.Context) (float64, int, error)
}

type DespesaRepositoryInterface interface {
	Create(ctx context.Context, d *entity.Despesa) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entity.Despesa, error)
}

type InteracaoRepositoryInterface interface {
	Create(ctx context.Context, i *entity.Interacao) error
	FindByCliente(ctx context.Context, clienteID string) ([]entity.Interacao, error)
}

type QueueProducerInterface interface {
	PublishFollowUp(ctx context.Context, f entity.FollowUp) error
}

type EmailService interface {
	SendResumoFollowUps(to string, followups []entity.FollowUp) error
}
