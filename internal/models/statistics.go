package models

// Status class keys of StatisticsSnapshot.StatusCodes.
const (
	StatusClass2xx = "2xx"
	StatusClass3xx = "3xx"
	StatusClass4xx = "4xx"
	StatusClass5xx = "5xx"
)

// KeyCount is one entry of a top-K table.
type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// StatisticsSnapshot summarises every segment of both streams. It is recomputed on each request.
type StatisticsSnapshot struct {
	TotalRequests   int64                `json:"totalRequests"`
	TodayRequests   int64                `json:"todayRequests"`
	StatusCodes     map[string]int64     `json:"statusCodes"`
	TopIPs          []KeyCount           `json:"topIPs"`
	TopURLs         []KeyCount           `json:"topURLs"`
	TopBrowsers     []KeyCount           `json:"topBrowsers"`
	TopOS           []KeyCount           `json:"topOS"`
	RequestsPerHour [24]int64            `json:"requestsPerHour"`
	TotalBytes      int64                `json:"totalBytes"`
	ErrorCount      int64                `json:"errorCount"`
	TodayErrors     int64                `json:"todayErrors"`
	ErrorLevels     map[ErrorLevel]int64 `json:"errorLevels"`
	ErrorRate       string               `json:"errorRate"`
	FilesScanned    int                  `json:"filesScanned"`
}

func NewEmptyStatisticsSnapshot() *StatisticsSnapshot {
	levels := make(map[ErrorLevel]int64, len(KnownErrorLevels))
	for _, level := range KnownErrorLevels {
		levels[level] = 0
	}
	return &StatisticsSnapshot{
		StatusCodes: map[string]int64{
			StatusClass2xx: 0,
			StatusClass3xx: 0,
			StatusClass4xx: 0,
			StatusClass5xx: 0,
		},
		TopIPs:      []KeyCount{},
		TopURLs:     []KeyCount{},
		TopBrowsers: []KeyCount{},
		TopOS:       []KeyCount{},
		ErrorLevels: levels,
		ErrorRate:   "0",
	}
}
