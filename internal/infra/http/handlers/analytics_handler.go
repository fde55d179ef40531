package handlers

import (
	"net/http"

	"github.com/gabrielfarias/autobrilho-backend/internal/usecase"
)

type AnalyticsHandler struct {
	UC *usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{UC: uc}
}

// Snapshot (GET /analytics) devolve as métricas do funil. O snapshot é o
// do último cálculo horário; ?recalcular=true força o recálculo na hora.
func (h *AnalyticsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	var (
		snapshot *usecase.SnapshotAnalytics
		err      error
	)

	if r.URL.Query().Get("recalcular") == "true" {
		snapshot, err = h.UC.Calcular(r.Context())
	} else {
		snapshot, err = h.UC.Ultimo(r.Context())
	}

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
