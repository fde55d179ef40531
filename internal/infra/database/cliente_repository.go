package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

type ClienteRepository struct {
	DB *sql.DB
}

func NewClienteRepository(db *sql.DB) *ClienteRepository {
	return &ClienteRepository{DB: db}
}

func (r *ClienteRepository) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nome, telefone, veiculo, placa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Nome,
		c.Telefone,
		nullString(c.Veiculo),
		nullString(c.Placa),
		c.CriadoEm,
		c.AtualizadoEm,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrTelefoneJaCadastrado
		}

		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *ClienteRepository) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nome = $2, telefone = $3, veiculo = $4, placa = $5, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Nome,
		c.Telefone,
		nullString(c.Veiculo),
		nullString(c.Placa),
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrTelefoneJaCadastrado
		}
		return err
	}

	return nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	return err
}

func (r *ClienteRepository) FindByID(ctx context.Context, id string) (*entity.Cliente, error) {
	query := `
		SELECT id, nome, telefone, veiculo, placa, estagio_manual, estagio_manual_em, created_at, updated_at
		FROM clientes
		WHERE id = $1
	`

	cliente, err := scanCliente(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return cliente, nil
}

// FindAll lista os clientes; busca filtra por nome, telefone ou placa.
func (r *ClienteRepository) FindAll(ctx context.Context, busca string) ([]entity.Cliente, error) {
	query := `
		SELECT id, nome, telefone, veiculo, placa, estagio_manual, estagio_manual_em, created_at, updated_at
		FROM clientes
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%' OR telefone ILIKE '%' || $1 || '%' OR placa ILIKE '%' || $1 || '%')
		ORDER BY nome
	`

	rows, err := r.DB.QueryContext(ctx, query, busca)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clientes []entity.Cliente
	for rows.Next() {
		cliente, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		clientes = append(clientes, *cliente)
	}
	return clientes, rows.Err()
}

// FindAllComOrcamentos carrega todos os clientes e anexa os orçamentos de
// cada um, já ordenados por criação decrescente. Duas consultas, sem N+1.
func (r *ClienteRepository) FindAllComOrcamentos(ctx context.Context) ([]entity.Cliente, error) {
	clientes, err := r.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(clientes) == 0 {
		return clientes, nil
	}

	query := `
		SELECT id, cliente_id, status, valor_total, desconto_percent, forma_pagamento, created_at, updated_at
		FROM orcamentos
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	porCliente := make(map[string][]entity.Orcamento)
	for rows.Next() {
		var o entity.Orcamento
		var valorTotal sql.NullFloat64
		var formaPagamento sql.NullString

		if err := rows.Scan(&o.ID, &o.ClienteID, &o.Status, &valorTotal, &o.DescontoPercent, &formaPagamento, &o.CriadoEm, &o.AtualizadoEm); err != nil {
			return nil, err
		}
		o.ValorTotal = valorTotal.Float64 // NULL conta como zero
		o.FormaPagamento = formaPagamento.String
		porCliente[o.ClienteID] = append(porCliente[o.ClienteID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range clientes {
		clientes[i].Orcamentos = porCliente[clientes[i].ID]
	}
	return clientes, nil
}

func (r *ClienteRepository) CountOrcamentos(ctx context.Context, clienteID string) (int, error) {
	var qtd int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orcamentos WHERE cliente_id = $1`, clienteID).Scan(&qtd)
	return qtd, err
}

func (r *ClienteRepository) AtualizarEstagioManual(ctx context.Context, clienteID string, estagio entity.Estagio, em time.Time) error {
	query := `UPDATE clientes SET estagio_manual = $2, estagio_manual_em = $3 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, clienteID, string(estagio), em)
	return err
}

func (r *ClienteRepository) LimparEstagioManual(ctx context.Context, clienteID string) error {
	query := `UPDATE clientes SET estagio_manual = NULL, estagio_manual_em = NULL WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, clienteID)
	return err
}

func (r *ClienteRepository) TocarAtualizadoEm(ctx context.Context, clienteID string) error {
	query := `UPDATE clientes SET updated_at = NOW() WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, clienteID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCliente(row rowScanner) (*entity.Cliente, error) {
	var c entity.Cliente
	var veiculo, placa, estagioManual sql.NullString
	var estagioManualEm sql.NullTime

	err := row.Scan(&c.ID, &c.Nome, &c.Telefone, &veiculo, &placa, &estagioManual, &estagioManualEm, &c.CriadoEm, &c.AtualizadoEm)
	if err != nil {
		return nil, err
	}

	c.Veiculo = veiculo.String
	c.Placa = placa.String
	if estagioManual.Valid {
		estagio := entity.Estagio(estagioManual.String)
		c.EstagioManual = &estagio
	}
	if estagioManualEm.Valid {
		em := estagioManualEm.Time
		c.EstagioManualEm = &em
	}
	return &c, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
