package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entidade: Despesa (gasto da loja: produto, água, aluguel...)
type Despesa struct {
	ID        string    `json:"id"`
	Descricao string    `json:"descricao"`
	Categoria string    `json:"categoria"`
	Valor     float64   `json:"valor"`
	Data      time.Time `json:"data"`

	CriadoEm time.Time `json:"criado_em"`
}

func NovaDespesa(descricao, categoria string, valor float64, data time.Time) (*Despesa, error) {
	if data.IsZero() {
		data = time.Now()
	}

	d := &Despesa{
		ID:        uuid.New().String(),
		Descricao: descricao,
		Categoria: categoria,
		Valor:     valor,
		Data:      data,
		CriadoEm:  time.Now(),
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Despesa) Validate() error {
	if d.Descricao == "" {
		return errors.New("descrição é obrigatória")
	}
	if d.Valor <= 0 {
		return errors.New("valor deve ser positivo")
	}
	return nil
}

// ResumoDespesas agrupa o total gasto por categoria.
type ResumoDespesas struct {
	Total         float64            `json:"total"`
	PorCategoria  map[string]float64 `json:"por_categoria"`
	QtdLancamento int                `json:"qtd_lancamentos"`
}
