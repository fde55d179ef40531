package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type InteracaoRepository struct {
	DB *sql.DB
}

func NewInteracaoRepository(db *sql.DB) *InteracaoRepository {
	return &InteracaoRepository{DB: db}
}

func (r *InteracaoRepository) Create(ctx context.Context, i *entity.Interacao) error {
	query := `
		INSERT INTO interacoes (id, cliente_id, tipo, observacao, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		i.ID,
		i.ClienteID,
		i.Tipo,
		nullString(i.Observacao),
		i.CriadoEm,
	)

	if err != nil {
		return fmt.Errorf("falha ao registrar interação: %w", err)
	}
	return nil
}

func (r *InteracaoRepository) FindByCliente(ctx context.Context, clienteID string) ([]entity.Interacao, error) {
	query := `
		SELECT id, cliente_id, tipo, observacao, created_at
		FROM interacoes
		WHERE cliente_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, clienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interacoes []entity.Interacao
	for rows.Next() {
		var i entity.Interacao
		var observacao sql.NullString

		if err := rows.Scan(&i.ID, &i.ClienteID, &i.Tipo, &observacao, &i.CriadoEm); err != nil {
			return nil, err
		}
		i.Observacao = observacao.String
		interacoes = append(interacoes, i)
	}
	return interacoes, rows.Err()
}
