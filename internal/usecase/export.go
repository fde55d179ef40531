package usecase

import (
	"context"
)

// GeradorPDF transforma um orçamento resolvido em bytes de PDF.
type GeradorPDF interface {
	Gerar(doc DocumentoOrcamento) ([]byte, error)
}

// GeradorLista produz o export tabular (CSV ou XLSX): uma linha por
// orçamento, sem detalhe de itens.
type GeradorLista interface {
	Gerar(linhas []OrcamentoComCliente) ([]byte, error)
}

type ExportUseCase struct {
	Orcamentos OrcamentoRepositoryInterface
	Clientes   ClienteRepositoryInterface
	PDF        GeradorPDF
	CSV        GeradorLista
	XLSX       GeradorLista
}

func NewExportUseCase(orcamentos OrcamentoRepositoryInterface, clientes ClienteRepositoryInterface, pdf GeradorPDF, csv, xlsx GeradorLista) *ExportUseCase {
	return &ExportUseCase{
		Orcamentos: orcamentos,
		Clientes:   clientes,
		PDF:        pdf,
		CSV:        csv,
		XLSX:       xlsx,
	}
}

// ExportarPDF resolve orçamento + cliente e gera o documento. Cliente
// ausente interrompe antes de montar qualquer coisa.
func (uc *ExportUseCase) ExportarPDF(ctx context.Context, orcamentoID string) ([]byte, error) {
	orcamento, err := uc.Orcamentos.FindByID(ctx, orcamentoID)
	if err != nil {
		return nil, &DomainError{Code: "QUOTE_NOT_FOUND", Message: "orçamento não encontrado"}
	}

	cliente, err := uc.Clientes.FindByID(ctx, orcamento.ClienteID)
	if err != nil {
		return nil, &DomainError{
			Code:    "CLIENT_NOT_FOUND",
			Message: "cliente do orçamento não encontrado",
		}
	}

	pdf, err := uc.PDF.Gerar(DocumentoOrcamento{Orcamento: orcamento, Cliente: cliente})
	if err != nil {
		return nil, &TechnicalError{Code: "EXPORT_ERROR", Message: "falha ao gerar o PDF: " + err.Error()}
	}
	return pdf, nil
}

func (uc *ExportUseCase) ExportarListaCSV(ctx context.Context) ([]byte, error) {
	return uc.exportarLista(ctx, uc.CSV)
}

func (uc *ExportUseCase) ExportarListaXLSX(ctx context.Context) ([]byte, error) {
	return uc.exportarLista(ctx, uc.XLSX)
}

func (uc *ExportUseCase) exportarLista(ctx context.Context, gerador GeradorLista) ([]byte, error) {
	linhas, err := uc.Orcamentos.FindAll(ctx, nil)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao listar orçamentos: " + err.Error()}
	}

	arquivo, err := gerador.Gerar(linhas)
	if err != nil {
		return nil, &TechnicalError{Code: "EXPORT_ERROR", Message: "falha ao gerar o arquivo: " + err.Error()}
	}
	return arquivo, nil
}
