package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type ServicoRepository struct {
	DB *sql.DB
}

func NewServicoRepository(db *sql.DB) *ServicoRepository {
	return &ServicoRepository{DB: db}
}

func (r *ServicoRepository) Create(ctx context.Context, s *entity.Servico) error {
	query := `
		INSERT INTO servicos (id, nome, descricao, categoria, preco, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID,
		s.Nome,
		nullString(s.Descricao),
		nullString(s.Categoria),
		s.Preco,
		s.Ativo,
		s.CriadoEm,
		s.AtualizadoEm,
	)

	if err != nil {
		return fmt.Errorf("falha ao criar serviço: %w", err)
	}
	return nil
}

func (r *ServicoRepository) Update(ctx context.Context, s *entity.Servico) error {
	query := `
		UPDATE servicos
		SET nome = $2, descricao = $3, categoria = $4, preco = $5, ativo = $6, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID,
		s.Nome,
		nullString(s.Descricao),
		nullString(s.Categoria),
		s.Preco,
		s.Ativo,
	)
	return err
}

func (r *ServicoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM servicos WHERE id = $1`, id)
	return err
}

func (r *ServicoRepository) FindByID(ctx context.Context, id string) (*entity.Servico, error) {
	query := `
		SELECT id, nome, descricao, categoria, preco, ativo, created_at, updated_at
		FROM servicos
		WHERE id = $1
	`

	servico, err := scanServico(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("serviço não encontrado: %w", err)
	}
	return servico, nil
}

func (r *ServicoRepository) FindAll(ctx context.Context, apenasAtivos bool) ([]entity.Servico, error) {
	query := `
		SELECT id, nome, descricao, categoria, preco, ativo, created_at, updated_at
		FROM servicos
		WHERE ($1 = FALSE OR ativo = TRUE)
		ORDER BY nome
	`

	rows, err := r.DB.QueryContext(ctx, query, apenasAtivos)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servicos []entity.Servico
	for rows.Next() {
		servico, err := scanServico(rows)
		if err != nil {
			return nil, err
		}
		servicos = append(servicos, *servico)
	}
	return servicos, rows.Err()
}

func scanServico(row rowScanner) (*entity.Servico, error) {
	var s entity.Servico
	var descricao, categoria sql.NullString

	err := row.Scan(&s.ID, &s.Nome, &descricao, &categoria, &s.Preco, &s.Ativo, &s.CriadoEm, &s.AtualizadoEm)
	if err != nil {
		return nil, err
	}

	s.Descricao = descricao.String
	s.Categoria = categoria.String
	return &s, nil
}
