package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entidade: Servico (catálogo da loja: lavagem, polimento, vitrificação...)
type Servico struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria"`
	Preco     float64 `json:"preco"`
	Ativo     bool    `json:"ativo"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

func NovoServico(nome, descricao, categoria string, preco float64) (*Servico, error) {
	agora := time.Now()
	s := &Servico{
		ID:           uuid.New().String(),
		Nome:         nome,
		Descricao:    descricao,
		Categoria:    categoria,
		Preco:        preco,
		Ativo:        true,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Servico) Validate() error {
	if s.Nome == "" {
		return errors.New("nome é obrigatório")
	}
	if s.Preco < 0 {
		return errors.New("preço não pode ser negativo")
	}
	return nil
}
