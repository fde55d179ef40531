package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type OrcamentoRepository struct {
	DB *sql.DB
}

func NewOrcamentoRepository(db *sql.DB) *OrcamentoRepository {
	return &OrcamentoRepository{DB: db}
}

func (r *OrcamentoRepository) Create(ctx context.Context, o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamentos (id, cliente_id, status, valor_total, desconto_percent, forma_pagamento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		o.ID,
		o.ClienteID,
		string(o.Status),
		o.ValorTotal,
		o.DescontoPercent,
		nullString(o.FormaPagamento),
		o.CriadoEm,
		o.AtualizadoEm,
	)

	if err != nil {
		return fmt.Errorf("falha ao criar orçamento: %w", err)
	}
	return nil
}

func (r *OrcamentoRepository) CreateItens(ctx context.Context, o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamento_itens (id, orcamento_id, servico_id, descricao, quantidade, preco_unitario)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range o.Itens {
		_, err := r.DB.ExecContext(ctx, query,
			item.ID,
			item.OrcamentoID,
			item.ServicoID,
			item.Descricao,
			item.Quantidade,
			item.PrecoUnitario,
		)
		if err != nil {
			return fmt.Errorf("falha ao criar item do orçamento: %w", err)
		}
	}
	return nil
}

// Delete remove o orçamento; os itens caem junto pelo ON DELETE CASCADE.
func (r *OrcamentoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM orcamentos WHERE id = $1`, id)
	return err
}

func (r *OrcamentoRepository) FindByID(ctx context.Context, id string) (*entity.Orcamento, error) {
	query := `
		SELECT id, cliente_id, status, valor_total, desconto_percent, forma_pagamento, created_at, updated_at
		FROM orcamentos
		WHERE id = $1
	`

	var o entity.Orcamento
	var valorTotal sql.NullFloat64
	var formaPagamento sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID,
		&o.ClienteID,
		&o.Status,
		&valorTotal,
		&o.DescontoPercent,
		&formaPagamento,
		&o.CriadoEm,
		&o.AtualizadoEm,
	)
	if err != nil {
		return nil, fmt.Errorf("orçamento não encontrado: %w", err)
	}
	o.ValorTotal = valorTotal.Float64
	o.FormaPagamento = formaPagamento.String

	itens, err := r.findItens(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Itens = itens

	return &o, nil
}

func (r *OrcamentoRepository) findItens(ctx context.Context, orcamentoID string) ([]entity.ItemOrcamento, error) {
	query := `
		SELECT id, orcamento_id, servico_id, descricao, quantidade, preco_unitario
		FROM orcamento_itens
		WHERE orcamento_id = $1
		ORDER BY descricao
	`

	rows, err := r.DB.QueryContext(ctx, query, orcamentoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var itens []entity.ItemOrcamento
	for rows.Next() {
		var item entity.ItemOrcamento
		var servicoID sql.NullString

		if err := rows.Scan(&item.ID, &item.OrcamentoID, &servicoID, &item.Descricao, &item.Quantidade, &item.PrecoUnitario); err != nil {
			return nil, err
		}
		if servicoID.Valid {
			id := servicoID.String
			item.ServicoID = &id
		}
		itens = append(itens, item)
	}
	return itens, rows.Err()
}

// FindAll lista orçamentos com o nome do cliente, do mais novo para o
// mais antigo; status nil traz todos.
func (r *OrcamentoRepository) FindAll(ctx context.Context, status *entity.Status) ([]usecase.OrcamentoComCliente, error) {
	query := `
		SELECT o.id, o.cliente_id, o.status, o.valor_total, o.desconto_percent, o.forma_pagamento, o.created_at, o.updated_at, c.nome
		FROM orcamentos o
		JOIN clientes c ON c.id = o.cliente_id
		WHERE ($1 = '' OR o.status = $1)
		ORDER BY o.created_at DESC
	`

	filtro := ""
	if status != nil {
		filtro = string(*status)
	}

	rows, err := r.DB.QueryContext(ctx, query, filtro)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var linhas []usecase.OrcamentoComCliente
	for rows.Next() {
		var linha usecase.OrcamentoComCliente
		var valorTotal sql.NullFloat64
		var formaPagamento sql.NullString

		err := rows.Scan(
			&linha.ID,
			&linha.ClienteID,
			&linha.Status,
			&valorTotal,
			&linha.DescontoPercent,
			&formaPagamento,
			&linha.CriadoEm,
			&linha.AtualizadoEm,
			&linha.ClienteNome,
		)
		if err != nil {
			return nil, err
		}
		linha.ValorTotal = valorTotal.Float64
		linha.FormaPagamento = formaPagamento.String
		linhas = append(linhas, linha)
	}
	return linhas, rows.Err()
}

func (r *OrcamentoRepository) AtualizarStatus(ctx context.Context, id string, status entity.Status) error {
	query := `UPDATE orcamentos SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, string(status))
	return err
}

// SomaEContagemFinalizados alimenta o ticket médio. COALESCE cobre
// valor_total nulo, que conta como zero.
func (r *OrcamentoRepository) SomaEContagemFinalizados(ctx context.Context) (float64, int, error) {
	query := `
		SELECT COALESCE(SUM(COALESCE(valor_total, 0)), 0), COUNT(*)
		FROM orcamentos
		WHERE status = $1
	`

	var soma float64
	var qtd int
	err := r.DB.QueryRowContext(ctx, query, string(entity.StatusFinalizado)).Scan(&soma, &qtd)
	if err != nil {
		return 0, 0, err
	}
	return soma, qtd, nil
}
