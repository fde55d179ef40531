package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gabrielfarias/autobrilho-backend/internal/format"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

// DadosEmpresa preenche o cabeçalho e o rodapé do documento.
type DadosEmpresa struct {
	Nome     string
	Telefone string
	Endereco string
}

// PDFGenerator monta o orçamento em A4 com as fontes core do PDF.
// Os acentos do português cabem no cp1252, então o tradutor padrão
// resolve sem embutir TTF.
type PDFGenerator struct {
	Empresa DadosEmpresa
}

func NewPDFGenerator(empresa DadosEmpresa) *PDFGenerator {
	return &PDFGenerator{Empresa: empresa}
}

func (g *PDFGenerator) Gerar(doc usecase.DocumentoOrcamento) ([]byte, error) {
	o := doc.Orcamento
	cliente := doc.Cliente

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Orçamento"), false)
	pdf.AddPage()

	// Cabeçalho da loja
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(g.Empresa.Nome))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	if g.Empresa.Endereco != "" {
		pdf.Cell(0, 5, tr(g.Empresa.Endereco))
		pdf.Ln(5)
	}
	if g.Empresa.Telefone != "" {
		pdf.Cell(0, 5, tr(format.Telefone(g.Empresa.Telefone)))
		pdf.Ln(5)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Orçamento — %s", format.Data(o.CriadoEm))))
	pdf.Ln(10)

	// Bloco do cliente
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, tr("Cliente"))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, tr(cliente.Nome))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr(format.Telefone(cliente.Telefone)))
	pdf.Ln(5)
	if cliente.Veiculo != "" {
		veiculo := cliente.Veiculo
		if cliente.Placa != "" {
			veiculo += " • " + format.Placa(cliente.Placa)
		}
		pdf.Cell(0, 5, tr(veiculo))
		pdf.Ln(5)
	}
	pdf.Ln(5)

	// Tabela de itens
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(95, 7, tr("Serviço"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, tr("Qtd"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, tr("Preço unit."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, tr("Total"), "1", 0, "R", true, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range o.Itens {
		pdf.CellFormat(95, 6, tr(abreviar(item.Descricao, 52)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantidade), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, tr(format.Moeda(item.PrecoUnitario)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr(format.Moeda(item.Total())), "1", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Totais
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 6, tr("Subtotal"), "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, tr(format.Moeda(o.Subtotal())), "", 0, "R", false, 0, "")
	pdf.Ln(6)

	if o.DescontoPercent > 0 {
		rotulo := fmt.Sprintf("Desconto (%.0f%%)", o.DescontoPercent)
		pdf.CellFormat(150, 6, tr(rotulo), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr("-"+format.Moeda(o.DescontoValor())), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(150, 8, tr("Total"), "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, tr(format.Moeda(o.ValorTotal)), "", 0, "R", false, 0, "")
	pdf.Ln(10)

	if o.FormaPagamento != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr("Forma de pagamento: "+o.FormaPagamento))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Status: %s • Gerado em %s", o.Status, format.DataHora(o.AtualizadoEm))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("falha ao gerar o PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func abreviar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
