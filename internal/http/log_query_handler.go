package http

import (
	"net/http"

	"log-viewer/internal/models"
	"log-viewer/internal/scanners"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type logQueryHandler struct {
	stream      models.LogStream
	scanner     scanners.Scanner
	queryParser *queryParser
}

func NewLogQueryHandler(stream models.LogStream, scanner scanners.Scanner, options QueryOptions) AppHttpHandler {
	return &logQueryHandler{
		stream:      stream,
		scanner:     scanner,
		queryParser: newQueryParser(options),
	}
}

// Handle processes GET /api/access-logs and GET /api/error-logs requests.
func (h *logQueryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query, err := h.queryParser.parse(r, h.stream)
	if err != nil {
		return err
	}

	result, err := h.scanner.Scan(r.Context(), h.stream, query)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, result)
}
