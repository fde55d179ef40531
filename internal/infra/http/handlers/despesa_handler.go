package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type DespesaHandler struct {
	UC *usecase.DespesaUseCase
}

func NewDespesaHandler(uc *usecase.DespesaUseCase) *DespesaHandler {
	return &DespesaHandler{UC: uc}
}

func (h *DespesaHandler) Criar(w http.ResponseWriter, r *http.Request) {
	var input usecase.CriarDespesaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	despesa, err := h.UC.Criar(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, despesa)
}

func (h *DespesaHandler) Listar(w http.ResponseWriter, r *http.Request) {
	despesas, err := h.UC.Listar(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, despesas)
}

func (h *DespesaHandler) Excluir(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Excluir(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Resumo (GET /despesas/resumo) devolve o total e o gasto por categoria.
func (h *DespesaHandler) Resumo(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.UC.Resumo(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resumo)
}
