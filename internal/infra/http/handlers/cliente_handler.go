package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type ClienteHandler struct {
	UC *usecase.ClienteUseCase
}

func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{UC: uc}
}

func (h *ClienteHandler) Criar(w http.ResponseWriter, r *http.Request) {
	var input usecase.CriarClienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	cliente, err := h.UC.Criar(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cliente)
}

// Listar aceita ?busca= para filtrar por nome, telefone ou placa.
func (h *ClienteHandler) Listar(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.UC.Listar(r.Context(), r.URL.Query().Get("busca"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientes)
}

func (h *ClienteHandler) Buscar(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.UC.Buscar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *ClienteHandler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var input usecase.AtualizarClienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	cliente, err := h.UC.Atualizar(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *ClienteHandler) Excluir(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Excluir(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type registrarInteracaoInput struct {
	Tipo       string `json:"tipo"`
	Observacao string `json:"observacao"`
}

func (h *ClienteHandler) RegistrarInteracao(w http.ResponseWriter, r *http.Request) {
	var input registrarInteracaoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	interacao, err := h.UC.RegistrarInteracao(r.Context(), chi.URLParam(r, "id"), input.Tipo, input.Observacao)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, interacao)
}

func (h *ClienteHandler) ListarInteracoes(w http.ResponseWriter, r *http.Request) {
	interacoes, err := h.UC.ListarInteracoes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interacoes)
}

// LinkWhatsApp devolve o deep link wa.me do cliente; ?mensagem= vira o
// texto pré-preenchido.
func (h *ClienteHandler) LinkWhatsApp(w http.ResponseWriter, r *http.Request) {
	link, err := h.UC.LinkWhatsApp(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("mensagem"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"link": link})
}
