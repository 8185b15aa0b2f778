package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"log-viewer/internal/models"
)

var (
	// <ip> <ident> <user> [<timestamp>] "<request>" <status> <bytes> "<referer>" "<user-agent>"
	accessLogPattern = regexp.MustCompile(`^([0-9A-Fa-f.:]+) (.*?) (.*?) \[(.*?)\] "(.*?)" (\d+) (\d+) "(.*?)" "(.*?)"\s*$`)

	// <yyyy/mm/dd hh:mm:ss> [<level>] <message>
	errorLogPattern = regexp.MustCompile(`^(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}) \[(.*?)\] (.*)$`)
)

// ParseAccess parses one access log line. Lines outside the grammar report false.
func ParseAccess(line string) (*models.AccessRecord, bool) {
	match := accessLogPattern.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}

	status, err := strconv.Atoi(match[6])
	if err != nil {
		return nil, false
	}
	bytesSent, err := strconv.ParseInt(match[7], 10, 64)
	if err != nil {
		return nil, false
	}

	return &models.AccessRecord{
		ClientAddress: match[1],
		RemoteUser:    match[3],
		TimestampRaw:  match[4],
		RequestLine:   match[5],
		StatusCode:    status,
		BytesSent:     bytesSent,
		Referer:       match[8],
		UserAgent:     match[9],
	}, true
}

// ParseError parses one error log line. Lines outside the grammar report false.
func ParseError(line string) (*models.ErrorRecord, bool) {
	match := errorLogPattern.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}

	return &models.ErrorRecord{
		TimestampRaw: match[1],
		Level:        models.ErrorLevel(match[2]),
		Message:      match[3],
	}, true
}

// ParseRequestPath returns the second token of a request line without its query string.
func ParseRequestPath(requestLine string) string {
	fields := strings.Fields(requestLine)
	if len(fields) < 2 {
		return ""
	}
	path, _, _ := strings.Cut(fields[1], "?")
	return path
}
