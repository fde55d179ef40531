package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

// MockClienteRepository
type MockClienteRepository struct {
	mock.Mock
}

func (m *MockClienteRepository) Create(ctx context.Context, c *entity.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClienteRepository) Update(ctx context.Context, c *entity.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClienteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClienteRepository) FindByID(ctx context.Context, id string) (*entity.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cliente), args.Error(1)
}

func (m *MockClienteRepository) FindAll(ctx context.Context, busca string) ([]entity.Cliente, error) {
	args := m.Called(ctx, busca)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Cliente), args.Error(1)
}

func (m *MockClienteRepository) FindAllComOrcamentos(ctx context.Context) ([]entity.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Cliente), args.Error(1)
}

func (m *MockClienteRepository) CountOrcamentos(ctx context.Context, clienteID string) (int, error) {
	args := m.Called(ctx, clienteID)
	return args.Int(0), args.Error(1)
}

func (m *MockClienteRepository) AtualizarEstagioManual(ctx context.Context, clienteID string, estagio entity.Estagio, em time.Time) error {
	args := m.Called(ctx, clienteID, estagio, em)
	return args.Error(0)
}

func (m *MockClienteRepository) LimparEstagioManual(ctx context.Context, clienteID string) error {
	args := m.Called(ctx, clienteID)
	return args.Error(0)
}

func (m *MockClienteRepository) TocarAtualizadoEm(ctx context.Context, clienteID string) error {
	args := m.Called(ctx, clienteID)
	return args.Error(0)
}

// MockOrcamentoRepository
type MockOrcamentoRepository struct {
	mock.Mock
}

func (m *MockOrcamentoRepository) Create(ctx context.Context, o *entity.Orcamento) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrcamentoRepository) CreateItens(ctx context.Context, o *entity.Orcamento) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrcamentoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrcamentoRepository) FindByID(ctx context.Context, id string) (*entity.Orcamento, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Orcamento), args.Error(1)
}

func (m *MockOrcamentoRepository) FindAll(ctx context.Context, status *entity.Status) ([]OrcamentoComCliente, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OrcamentoComCliente), args.Error(1)
}

func (m *MockOrcamentoRepository) AtualizarStatus(ctx context.Context, id string, status entity.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrcamentoRepository) SomaEContagemFinalizados(ctx context.Context) (float64, int, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

// MockServicoRepository
type MockServicoRepository struct {
	mock.Mock
}

func (m *MockServicoRepository) Create(ctx context.Context, s *entity.Servico) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServicoRepository) Update(ctx context.Context, s *entity.Servico) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServicoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServicoRepository) FindByID(ctx context.Context, id string) (*entity.Servico, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Servico), args.Error(1)
}

func (m *MockServicoRepository) FindAll(ctx context.Context, apenasAtivos bool) ([]entity.Servico, error) {
	args := m.Called(ctx, apenasAtivos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Servico), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishFollowUp(ctx context.Context, f entity.FollowUp) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
