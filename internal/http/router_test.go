package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	aggregatormocks "log-viewer/internal/aggregators/mocks"
	"log-viewer/internal/models"
	scannermocks "log-viewer/internal/scanners/mocks"
	"log-viewer/internal/streams"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	server     *httptest.Server
	scanner    *scannermocks.MockScanner
	aggregator *aggregatormocks.MockStatisticsAggregator
	hub        *streams.Hub
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	fixture := &routerFixture{
		scanner:    scannermocks.NewMockScanner(ctrl),
		aggregator: aggregatormocks.NewMockStatisticsAggregator(ctrl),
		hub:        streams.NewHub(4, zerolog.Nop()),
	}
	ctx, cancel := context.WithCancel(context.Background())
	go fixture.hub.Run(ctx)

	router := NewRouter(fixture.scanner, fixture.aggregator, fixture.hub, QueryOptions{DefaultPageSize: 50, MaxPageSize: 500}, zerolog.Nop())
	fixture.server = httptest.NewServer(router)
	t.Cleanup(func() {
		fixture.server.Close()
		cancel()
	})
	return fixture
}

func TestRouter_LogEndpointsDispatchByStream(t *testing.T) {
	t.Parallel()

	fixture := newRouterFixture(t)
	fixture.scanner.EXPECT().Scan(gomock.Any(), models.StreamAccess, gomock.Any()).
		Return(models.NewQueryResult(0, 1, 50, false, nil), nil)
	fixture.scanner.EXPECT().Scan(gomock.Any(), models.StreamError, gomock.Any()).
		Return(models.NewQueryResult(0, 1, 50, false, nil), nil)

	for _, path := range []string{"/api/access-logs", "/api/error-logs"} {
		resp, err := http.Get(fixture.server.URL + path)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, resp.Header.Get(headerRequestID), path)
		assert.JSONEq(t, `{"matchingCount":0,"page":1,"totalPages":0,"approximate":false,"logs":[]}`, string(body), path)
	}
}

func TestRouter_Stats(t *testing.T) {
	t.Parallel()

	fixture := newRouterFixture(t)
	fixture.aggregator.EXPECT().Aggregate(gomock.Any()).Return(models.NewEmptyStatisticsSnapshot(), nil)

	resp, err := http.Get(fixture.server.URL + "/api/stats")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	fixture := newRouterFixture(t)

	resp, err := http.Get(fixture.server.URL + "/healthz")
	require.NoError(t, err)
	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, "ok", health["status"])

	resp, err = http.Get(fixture.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	fixture := newRouterFixture(t)

	resp, err := http.Get(fixture.server.URL + "/api/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_TailUpgradesThroughMiddleware(t *testing.T) {
	t.Parallel()

	fixture := newRouterFixture(t)

	url := "ws" + strings.TrimPrefix(fixture.server.URL, "http") + "/api/tail"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Eventually(t, func() bool { return fixture.hub.SubscriberCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}
