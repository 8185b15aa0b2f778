package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"log-viewer/internal/models"
	"log-viewer/internal/parsers"
	"log-viewer/internal/shared/validators"
)

const (
	paramPage      = "page"
	paramLimit     = "limit"
	paramPageSize  = "pageSize"
	paramSearch    = "search"
	paramIP        = "ip"
	paramStatus    = "status"
	paramLevel     = "level"
	paramStartDate = "startDate"
	paramEndDate   = "endDate"
)

// QueryOptions bounds the paging parameters accepted by the log query endpoints.
type QueryOptions struct {
	DefaultPageSize int
	MaxPageSize     int
	Location        *time.Location
}

type logQueryParams struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

type queryParser struct {
	options  QueryOptions
	validate *validators.Validate
}

func newQueryParser(options QueryOptions) *queryParser {
	if options.DefaultPageSize <= 0 {
		options.DefaultPageSize = 50
	}
	if options.MaxPageSize < options.DefaultPageSize {
		options.MaxPageSize = options.DefaultPageSize
	}
	if options.Location == nil {
		options.Location = time.Local
	}
	return &queryParser{options: options, validate: validators.New()}
}

// parse builds a QuerySpec from the request. Unparseable page numbers fall back to defaults;
// only malformed dates are rejected.
func (p *queryParser) parse(r *http.Request, stream models.LogStream) (models.QuerySpec, error) {
	values := r.URL.Query()

	params := logQueryParams{
		StartDate: strings.TrimSpace(values.Get(paramStartDate)),
		EndDate:   strings.TrimSpace(values.Get(paramEndDate)),
	}
	if err := p.validate.Struct(params); err != nil {
		return models.QuerySpec{}, errInvalidQueryParameter("startDate and endDate must be calendar dates (YYYY-MM-DD)", err)
	}
	dateRange, err := parsers.NewDateBounds(params.StartDate, params.EndDate, p.options.Location)
	if err != nil {
		return models.QuerySpec{}, errInvalidQueryParameter("startDate and endDate must be calendar dates (YYYY-MM-DD)", err)
	}

	limit := values.Get(paramLimit)
	if limit == "" {
		limit = values.Get(paramPageSize)
	}
	pageSize := intOrDefault(limit, p.options.DefaultPageSize)
	if pageSize > p.options.MaxPageSize {
		pageSize = p.options.MaxPageSize
	}

	query := models.QuerySpec{
		Page:           intOrDefault(values.Get(paramPage), 1),
		PageSize:       pageSize,
		FullTextSearch: values.Get(paramSearch),
		DateRange:      dateRange,
	}
	switch stream {
	case models.StreamAccess:
		query.Filters.IP = values.Get(paramIP)
		query.Filters.Status = values.Get(paramStatus)
	case models.StreamError:
		query.Filters.Level = values.Get(paramLevel)
	}

	return query.Clamped(), nil
}

func intOrDefault(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}
