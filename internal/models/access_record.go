package models

// AccessRecord is one parsed line of the access log (combined log format).
type AccessRecord struct {
	ClientAddress string `json:"ip"`
	RemoteUser    string `json:"remoteUser"`
	TimestampRaw  string `json:"timestampStr"`
	RequestLine   string `json:"request"`
	StatusCode    int    `json:"status"`
	BytesSent     int64  `json:"bytes"`
	Referer       string `json:"referer"`
	UserAgent     string `json:"userAgent"`
}

// AccessLogView is an AccessRecord enriched with the fields derived at read time.
//
// Example JSON:
//
//	{
//	  "ip": "203.0.113.7",
//	  "remoteUser": "-",
//	  "timestampStr": "15/Nov/2025:12:00:00 +0000",
//	  "request": "GET /about?ref=home HTTP/1.1",
//	  "status": 200,
//	  "bytes": 5120,
//	  "referer": "-",
//	  "userAgent": "Mozilla/5.0 ... Firefox/123.0",
//	  "browser": "Firefox",
//	  "os": "Windows",
//	  "path": "/about"
//	}
type AccessLogView struct {
	AccessRecord
	Browser     string `json:"browser"`
	OS          string `json:"os"`
	RequestPath string `json:"path"`
}

func (v *AccessLogView) Stream() LogStream { return StreamAccess }
