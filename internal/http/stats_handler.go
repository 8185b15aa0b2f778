package http

import (
	"net/http"

	"log-viewer/internal/aggregators"
)

type statsHandler struct {
	aggregator aggregators.StatisticsAggregator
}

func NewStatsHandler(aggregator aggregators.StatisticsAggregator) AppHttpHandler {
	return &statsHandler{aggregator: aggregator}
}

// Handle processes GET /api/stats requests. Every call recomputes the snapshot.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.aggregator.Aggregate(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, snapshot)
}
