package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type ServicoHandler struct {
	UC *usecase.ServicoUseCase
}

func NewServicoHandler(uc *usecase.ServicoUseCase) *ServicoHandler {
	return &ServicoHandler{UC: uc}
}

func (h *ServicoHandler) Criar(w http.ResponseWriter, r *http.Request) {
	var input usecase.CriarServicoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	servico, err := h.UC.Criar(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, servico)
}

// Listar devolve o catálogo; ?todos=true inclui os desativados.
func (h *ServicoHandler) Listar(w http.ResponseWriter, r *http.Request) {
	apenasAtivos := r.URL.Query().Get("todos") != "true"

	servicos, err := h.UC.Listar(r.Context(), apenasAtivos)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, servicos)
}

func (h *ServicoHandler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var input usecase.CriarServicoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	servico, err := h.UC.Atualizar(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, servico)
}

func (h *ServicoHandler) Desativar(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Desativar(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
