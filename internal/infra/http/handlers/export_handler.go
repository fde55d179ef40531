package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gabrielfarias/autobrilho-backend/internal/infra/http/middleware"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type ExportHandler struct {
	UC *usecase.ExportUseCase
}

func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{UC: uc}
}

// PDF (GET /orcamentos/{id}/pdf) baixa o orçamento pronto para enviar ao
// cliente.
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdf, err := h.UC.ExportarPDF(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordExport("pdf")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="orcamento-%s.pdf"`, id))
	w.Write(pdf)
}

func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	arquivo, err := h.UC.ExportarListaCSV(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordExport("csv")
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", nomeArquivo("csv"))
	w.Write(arquivo)
}

func (h *ExportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	arquivo, err := h.UC.ExportarListaXLSX(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordExport("xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", nomeArquivo("xlsx"))
	w.Write(arquivo)
}

func nomeArquivo(extensao string) string {
	return fmt.Sprintf(`attachment; filename="orcamentos-%s.%s"`, time.Now().Format("2006-01-02"), extensao)
}
