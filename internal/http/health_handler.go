package http

import "net/http"

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return &healthHandler{}
}

func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
