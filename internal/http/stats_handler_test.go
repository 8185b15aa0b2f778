package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log-viewer/internal/aggregators/mocks"
	"log-viewer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	aggregator := mocks.NewMockStatisticsAggregator(ctrl)

	snapshot := models.NewEmptyStatisticsSnapshot()
	snapshot.TotalRequests = 4
	snapshot.ErrorCount = 1
	snapshot.ErrorRate = "25.00"
	snapshot.TopIPs = []models.KeyCount{{Key: "10.0.0.1", Count: 3}}
	aggregator.EXPECT().Aggregate(gomock.Any()).Return(snapshot, nil)

	rr := httptest.NewRecorder()
	errorHandlingAdapter(NewStatsHandler(aggregator)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.EqualValues(t, 4, body["totalRequests"])
	assert.Equal(t, "25.00", body["errorRate"])
	assert.Len(t, body["requestsPerHour"], 24)
	assert.Contains(t, body, "statusCodes")
}

func TestStatsHandler_AggregateFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	aggregator := mocks.NewMockStatisticsAggregator(ctrl)
	aggregator.EXPECT().Aggregate(gomock.Any()).Return(nil, assert.AnError)

	rr := httptest.NewRecorder()
	errorHandlingAdapter(NewStatsHandler(aggregator)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
