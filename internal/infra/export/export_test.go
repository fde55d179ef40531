package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

func documentoDeTeste() usecase.DocumentoOrcamento {
	criadoEm := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	o := &entity.Orcamento{
		ID:        "orc-1",
		ClienteID: "cli-1",
		Status:    entity.StatusOrcamento,
		Itens: []entity.ItemOrcamento{
			{ID: "i1", Descricao: "Polimento técnico", Quantidade: 1, PrecoUnitario: 350},
			{ID: "i2", Descricao: "Higienização interna", Quantidade: 2, PrecoUnitario: 120},
		},
		DescontoPercent: 10,
		FormaPagamento:  "Pix",
		CriadoEm:        criadoEm,
		AtualizadoEm:    criadoEm,
	}
	o.CalcularTotais()

	return usecase.DocumentoOrcamento{
		Orcamento: o,
		Cliente: &entity.Cliente{
			ID:       "cli-1",
			Nome:     "João da Silva",
			Telefone: "11988887777",
			Veiculo:  "Honda Civic",
			Placa:    "ABC1234",
		},
	}
}

func TestPDFGenerator_Gerar(t *testing.T) {
	gerador := NewPDFGenerator(DadosEmpresa{
		Nome:     "AutoBrilho Estética Automotiva",
		Telefone: "1133334444",
		Endereco: "Rua das Oficinas, 120 - São Paulo/SP",
	})

	pdf, err := gerador.Gerar(documentoDeTeste())

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "saída deve começar com o cabeçalho PDF")
	assert.Greater(t, len(pdf), 1000)
}

func linhasDeTeste() []usecase.OrcamentoComCliente {
	criadoEm := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return []usecase.OrcamentoComCliente{
		{
			Orcamento: entity.Orcamento{
				ID:         "orc-1",
				Status:     entity.StatusFinalizado,
				ValorTotal: 1234.5,
				CriadoEm:   criadoEm,
			},
			ClienteNome: "João da Silva",
		},
		{
			Orcamento: entity.Orcamento{
				ID:         "orc-2",
				Status:     entity.StatusOrcamento,
				ValorTotal: 80,
				CriadoEm:   criadoEm.AddDate(0, 0, 1),
			},
			ClienteNome: "Maria Souza",
		},
	}
}

func TestCSVGenerator_Gerar(t *testing.T) {
	gerador := NewCSVGenerator()

	saida, err := gerador.Gerar(linhasDeTeste())
	assert.NoError(t, err)

	registros, err := csv.NewReader(bytes.NewReader(saida)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, registros, 3)

	assert.Equal(t, []string{"cliente", "valor_total", "status", "data"}, registros[0])
	assert.Equal(t, []string{"João da Silva", "R$ 1.234,50", "Finalizado", "10/03/2026"}, registros[1])
	assert.Equal(t, []string{"Maria Souza", "R$ 80,00", "Orçamento", "11/03/2026"}, registros[2])
}

func TestCSVGenerator_GerarVazio(t *testing.T) {
	saida, err := NewCSVGenerator().Gerar(nil)
	assert.NoError(t, err)

	registros, err := csv.NewReader(bytes.NewReader(saida)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, registros, 1) // só o cabeçalho
}

func TestXLSXGenerator_Gerar(t *testing.T) {
	gerador := NewXLSXGenerator()

	saida, err := gerador.Gerar(linhasDeTeste())

	assert.NoError(t, err)
	// XLSX é um zip: assinatura PK\x03\x04.
	assert.True(t, bytes.HasPrefix(saida, []byte("PK\x03\x04")))
	assert.Greater(t, len(saida), 1000)
}
