package events

import (
	"time"

	"log-viewer/internal/models"
)

// TailBatchEvent carries the records parsed from one growth of a live log file.
// It is produced at most once per detected growth and fanned out to every push subscriber.
//
// Example JSON:
//
//	{
//	  "batchId": "01JCZ3NDEKTSV4RRFFQ69G5FAV",
//	  "stream": "access",
//	  "fromOffset": 100,
//	  "toOffset": 140,
//	  "detectedAt": "2025-11-15T12:00:01Z",
//	  "logs": [
//	    {"ip": "203.0.113.7", "status": 200, "browser": "Firefox", "os": "Linux", ...}
//	  ]
//	}
type TailBatchEvent struct {
	BatchID    string             `json:"batchId"`
	Stream     models.LogStream   `json:"stream"`
	FromOffset int64              `json:"fromOffset"`
	ToOffset   int64              `json:"toOffset"`
	DetectedAt time.Time          `json:"detectedAt"`
	Logs       []models.LogRecord `json:"logs"`
}
