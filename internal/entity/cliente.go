package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTelefoneJaCadastrado vem da constraint de telefone único.
var ErrTelefoneJaCadastrado = errors.New("já existe um cliente com este telefone")

// Entidade: Cliente
type Cliente struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Veiculo  string `json:"veiculo"`
	Placa    string `json:"placa"`

	// Estágio arrastado manualmente no quadro. Vale até o próximo
	// movimento de orçamento do cliente; depois disso é ignorado.
	EstagioManual   *Estagio   `json:"estagio_manual,omitempty"`
	EstagioManualEm *time.Time `json:"estagio_manual_em,omitempty"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`

	// Carregado junto quando a consulta pede os orçamentos do cliente.
	Orcamentos []Orcamento `json:"orcamentos,omitempty"`
}

// Factory
func NovoCliente(nome, telefone, veiculo, placa string) (*Cliente, error) {
	agora := time.Now()
	cliente := &Cliente{
		ID:           uuid.New().String(),
		Nome:         nome,
		Telefone:     telefone,
		Veiculo:      veiculo,
		Placa:        placa,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}

	if err := cliente.Validate(); err != nil {
		return nil, err
	}

	return cliente, nil
}

func (c *Cliente) Validate() error {
	if c.Nome == "" {
		return errors.New("nome é obrigatório")
	}
	if c.Telefone == "" {
		return errors.New("telefone é obrigatório")
	}
	return nil
}
