package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type DespesaRepository struct {
	DB *sql.DB
}

func NewDespesaRepository(db *sql.DB) *DespesaRepository {
	return &DespesaRepository{DB: db}
}

func (r *DespesaRepository) Create(ctx context.Context, d *entity.Despesa) error {
	query := `
		INSERT INTO despesas (id, descricao, categoria, valor, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		d.ID,
		d.Descricao,
		nullString(d.Categoria),
		d.Valor,
		d.Data,
		d.CriadoEm,
	)

	if err != nil {
		return fmt.Errorf("falha ao criar despesa: %w", err)
	}
	return nil
}

func (r *DespesaRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM despesas WHERE id = $1`, id)
	return err
}

func (r *DespesaRepository) FindAll(ctx context.Context) ([]entity.Despesa, error) {
	query := `
		SELECT id, descricao, categoria, valor, data, created_at
		FROM despesas
		ORDER BY data DESC, created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var despesas []entity.Despesa
	for rows.Next() {
		var d entity.Despesa
		var categoria sql.NullString

		if err := rows.Scan(&d.ID, &d.Descricao, &categoria, &d.Valor, &d.Data, &d.CriadoEm); err != nil {
			return nil, err
		}
		d.Categoria = categoria.String
		despesas = append(despesas, d)
	}
	return despesas, rows.Err()
}
