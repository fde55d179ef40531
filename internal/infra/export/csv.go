package export

import (
	"bytes"
	"encoding/csv"

	"github.com/gabrielfarias/autobrilho-backend/internal/format"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

// CSVGenerator exporta a lista de orçamentos, uma linha por orçamento.
type CSVGenerator struct{}

func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{}
}

func (g *CSVGenerator) Gerar(linhas []usecase.OrcamentoComCliente) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"cliente", "valor_total", "status", "data"}); err != nil {
		return nil, err
	}

	for _, linha := range linhas {
		registro := []string{
			linha.ClienteNome,
			format.Moeda(linha.ValorTotal),
			string(linha.Status),
			format.Data(linha.CriadoEm),
		}
		if err := w.Write(registro); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
