package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entidade: Interacao — registro de contato com o cliente (ligação,
// WhatsApp, visita). Alimenta o histórico do CRM.
type Interacao struct {
	ID         string    `json:"id"`
	ClienteID  string    `json:"cliente_id"`
	Tipo       string    `json:"tipo"` // ligacao, whatsapp, visita, outro
	Observacao string    `json:"observacao"`
	CriadoEm   time.Time `json:"criado_em"`
}

func NovaInteracao(clienteID, tipo, observacao string) (*Interacao, error) {
	i := &Interacao{
		ID:         uuid.New().String(),
		ClienteID:  clienteID,
		Tipo:       tipo,
		Observacao: observacao,
		CriadoEm:   time.Now(),
	}

	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Interacao) Validate() error {
	if i.ClienteID == "" {
		return errors.New("cliente é obrigatório")
	}
	if i.Tipo == "" {
		return errors.New("tipo é obrigatório")
	}
	return nil
}
