package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type PipelineHandler struct {
	Pipeline *usecase.PipelineUseCase
	Scanner  *usecase.FollowUpScanner
}

func NewPipelineHandler(pipeline *usecase.PipelineUseCase, scanner *usecase.FollowUpScanner) *PipelineHandler {
	return &PipelineHandler{Pipeline: pipeline, Scanner: scanner}
}

type boardResponse struct {
	Ordem   []entity.Estagio                         `json:"ordem"`
	Colunas map[entity.Estagio][]entity.PipelineCard `json:"colunas"`
}

// Board (GET /pipeline) devolve o quadro com as colunas na ordem do funil.
func (h *PipelineHandler) Board(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, boardResponse{
		Ordem:   entity.OrdemEstagios,
		Colunas: h.Pipeline.Board.Colunas(),
	})
}

// Recarregar (POST /pipeline/recarregar) rederiva o quadro inteiro do banco.
func (h *PipelineHandler) Recarregar(w http.ResponseWriter, r *http.Request) {
	if err := h.Pipeline.Recarregar(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.Board(w, r)
}

// MoverCard (POST /pipeline/mover) aplica o drag-and-drop: o movimento é
// otimista no quadro e gravado como estágio manual do cliente.
func (h *PipelineHandler) MoverCard(w http.ResponseWriter, r *http.Request) {
	var input usecase.MoverCardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Pipeline.MoverCard(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	// O movimento muda o estágio do card no quadro; revarre na hora para a
	// lista de follow-up refletir isso (ex: cliente arrastado para
	// fechamento sai da lista já, não só no próximo tick do worker).
	h.Scanner.Scan(r.Context())

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// FollowUps (GET /pipeline/followups) devolve a última lista varrida.
func (h *PipelineHandler) FollowUps(w http.ResponseWriter, r *http.Request) {
	entradas := h.Scanner.Entradas()
	if entradas == nil {
		entradas = []entity.FollowUp{}
	}
	writeJSON(w, http.StatusOK, entradas)
}

// MarcarContatado (POST /pipeline/followups/{clienteID}/contatado) registra
// que o cliente foi contatado e o tira da lista.
func (h *PipelineHandler) MarcarContatado(w http.ResponseWriter, r *http.Request) {
	if err := h.Scanner.MarcarContatado(r.Context(), chi.URLParam(r, "clienteID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
