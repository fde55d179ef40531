package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gabrielfarias/autobrilho-backend/internal/infra/http/middleware"
	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type OrcamentoHandler struct {
	UC *usecase.OrcamentoUseCase
}

func NewOrcamentoHandler(uc *usecase.OrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{UC: uc}
}

func (h *OrcamentoHandler) Criar(w http.ResponseWriter, r *http.Request) {
	var input usecase.CriarOrcamentoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	orcamento, err := h.UC.Criar(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordOrcamentoCriado()
	writeJSON(w, http.StatusCreated, orcamento)
}

// Listar aceita ?status= para filtrar pelo status do funil.
func (h *OrcamentoHandler) Listar(w http.ResponseWriter, r *http.Request) {
	orcamentos, err := h.UC.Listar(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orcamentos)
}

func (h *OrcamentoHandler) Buscar(w http.ResponseWriter, r *http.Request) {
	orcamento, err := h.UC.Buscar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orcamento)
}

type transicionarStatusInput struct {
	Status string `json:"status"`
}

// TransicionarStatus (POST /orcamentos/{id}/status) aplica uma transição
// do funil: Orçamento -> Aprovado|Cancelado, Aprovado -> Finalizado|Cancelado.
func (h *OrcamentoHandler) TransicionarStatus(w http.ResponseWriter, r *http.Request) {
	var input transicionarStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	orcamento, err := h.UC.TransicionarStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordTransicaoStatus(input.Status)
	writeJSON(w, http.StatusOK, orcamento)
}
