package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gabrielfarias/autobrilho-backend/internal/format"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

const abaOrcamentos = "Orçamentos"

// XLSXGenerator exporta a lista de orçamentos em planilha Excel.
type XLSXGenerator struct{}

func NewXLSXGenerator() *XLSXGenerator {
	return &XLSXGenerator{}
}

func (g *XLSXGenerator) Gerar(linhas []usecase.OrcamentoComCliente) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", abaOrcamentos)

	cabecalho := []any{"Cliente", "Valor total", "Status", "Data"}
	if err := f.SetSheetRow(abaOrcamentos, "A1", &cabecalho); err != nil {
		return nil, err
	}

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(abaOrcamentos, "A1", "D1", estiloCabecalho); err != nil {
		return nil, err
	}

	for i, linha := range linhas {
		celula := fmt.Sprintf("A%d", i+2)
		registro := []any{
			linha.ClienteNome,
			format.Moeda(linha.ValorTotal),
			string(linha.Status),
			format.Data(linha.CriadoEm),
		}
		if err := f.SetSheetRow(abaOrcamentos, celula, &registro); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(abaOrcamentos, "A", "A", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(abaOrcamentos, "B", "D", 16); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("falha ao gerar a planilha: %w", err)
	}
	return buf.Bytes(), nil
}
