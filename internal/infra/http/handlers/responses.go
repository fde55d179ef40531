package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type erroResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError traduz os erros do caso de uso em status HTTP: regra de
// negócio vira 4xx com o código e a mensagem; falha técnica vira 500.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, statusDoCodigo(domainErr.Code), erroResponse{
			Code:    domainErr.Code,
			Message: domainErr.Message,
		})
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		writeJSON(w, http.StatusInternalServerError, erroResponse{
			Code:    techErr.Code,
			Message: techErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, erroResponse{
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	})
}

func statusDoCodigo(code string) int {
	switch code {
	case "CLIENT_NOT_FOUND", "QUOTE_NOT_FOUND", "SERVICE_NOT_FOUND", "CARD_NOT_FOUND":
		return http.StatusNotFound
	case "DUPLICATE_PHONE", "CLIENT_HAS_QUOTES", "INVALID_TRANSITION":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
