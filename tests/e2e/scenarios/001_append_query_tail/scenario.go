package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data and must match expected results.
const (
	seedAccessLines = 4000 // lines written to access.log before the checks
	seedErrorLines  = 400  // lines written to error.log before the checks
	appendedLines   = 25   // lines appended to access.log while a tail subscriber is connected
)

var (
	paths      = []string{"/", "/about", "/careers", "/contact"}
	statuses   = []int{200, 301, 404, 500}
	levels     = []string{"error", "warn", "notice", "crit"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type queryResult struct {
	MatchingCount int              `json:"matchingCount"`
	Page          int              `json:"page"`
	TotalPages    int              `json:"totalPages"`
	Approximate   bool             `json:"approximate"`
	Logs          []map[string]any `json:"logs"`
}

type tailBatch struct {
	BatchID string           `json:"batchId"`
	Stream  string           `json:"stream"`
	Logs    []map[string]any `json:"logs"`
}

// main runs the e2e scenario: 001_append_query_tail
//
// Start the server with log_storage.root_dir pointing at LOG_DIR before running.
//
// What it tests:
//   - Paged, newest-first queries over GET /api/access-logs and GET /api/error-logs
//   - Status class and level filters
//   - Statistics over both streams via GET /api/stats
//   - Live growth detection pushed over the /api/tail websocket
//
// Expected results:
//   - access-logs?status=4xx matches seedAccessLines/4 records
//   - error-logs?level=crit matches seedErrorLines/4 records
//   - stats.totalRequests equals seedAccessLines and stats.errorCount equals seedErrorLines
//   - every appended access line arrives over the tail channel
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	logDir := getEnv("LOG_DIR", ".tmp/logs")
	wantClean := getEnvBool("WANT_CLEAN_LOG_DIR", true)
	tailTimeout := time.Duration(getEnvInt("TAIL_TIMEOUT_SECONDS", 15)) * time.Second

	fmt.Println("Starting e2e scenario: 001_append_query_tail")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_DIR: %s\n", logDir)
	fmt.Println()

	if wantClean {
		if err := os.RemoveAll(logDir); err != nil {
			fail("failed to clean log dir: %v", err)
		}
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fail("failed to create log dir: %v", err)
	}

	now := time.Now()
	if err := writeLines(filepath.Join(logDir, "access.log"), seedAccessLines, func(i int) string { return accessLine(i, now) }); err != nil {
		fail("failed to seed access.log: %v", err)
	}
	if err := writeLines(filepath.Join(logDir, "error.log"), seedErrorLines, func(i int) string { return errorLine(i, now) }); err != nil {
		fail("failed to seed error.log: %v", err)
	}
	fmt.Printf("Seeded %d access lines and %d error lines\n", seedAccessLines, seedErrorLines)

	// Give the follower time to register the seeded length before subscribing
	time.Sleep(3 * time.Second)

	var failures []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			failures = append(failures, fmt.Sprintf(format, args...))
		}
	}

	var notFound queryResult
	if err := getJSON(baseURL+"/api/access-logs?limit=10&status=4xx", &notFound); err != nil {
		fail("access-logs query failed: %v", err)
	}
	check(notFound.MatchingCount == seedAccessLines/4 || notFound.Approximate, "access 4xx matchingCount = %d", notFound.MatchingCount)
	check(len(notFound.Logs) == 10, "access page size = %d", len(notFound.Logs))

	var crit queryResult
	if err := getJSON(baseURL+"/api/error-logs?level=crit", &crit); err != nil {
		fail("error-logs query failed: %v", err)
	}
	check(crit.MatchingCount == seedErrorLines/4, "error crit matchingCount = %d", crit.MatchingCount)

	var stats map[string]any
	if err := getJSON(baseURL+"/api/stats", &stats); err != nil {
		fail("stats query failed: %v", err)
	}
	check(stats["totalRequests"] == float64(seedAccessLines), "stats.totalRequests = %v", stats["totalRequests"])
	check(stats["errorCount"] == float64(seedErrorLines), "stats.errorCount = %v", stats["errorCount"])

	received, err := appendAndTail(baseURL, logDir, now, tailTimeout)
	if err != nil {
		fail("tail failed: %v", err)
	}
	check(received == appendedLines, "tail received %d of %d appended lines", received, appendedLines)

	fmt.Println()
	fmt.Println("=== Results ===")
	fmt.Printf("Access 4xx matches: %d (approximate=%v)\n", notFound.MatchingCount, notFound.Approximate)
	fmt.Printf("Error crit matches: %d\n", crit.MatchingCount)
	fmt.Printf("Stats totalRequests: %v, errorCount: %v, errorRate: %v\n", stats["totalRequests"], stats["errorCount"], stats["errorRate"])
	fmt.Printf("Tail records received: %d\n", received)

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "FAILED: %s\n", failure)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func appendAndTail(baseURL, logDir string, now time.Time, timeout time.Duration) (int, error) {
	wsURL, err := url.Parse(baseURL)
	if err != nil {
		return 0, err
	}
	wsURL.Scheme = "ws"
	wsURL.Path = "/api/tail"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer conn.Close()

	file, err := os.OpenFile(filepath.Join(logDir, "access.log"), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	for i := 0; i < appendedLines; i++ {
		if _, err := file.WriteString(accessLine(seedAccessLines+i, now) + "\n"); err != nil {
			_ = file.Close()
			return 0, err
		}
	}
	if err := file.Close(); err != nil {
		return 0, err
	}

	received := 0
	deadline := time.Now().Add(timeout)
	for received < appendedLines {
		_ = conn.SetReadDeadline(deadline)
		_, data, err := conn.ReadMessage()
		if err != nil {
			return received, nil
		}
		var batch tailBatch
		if err := json.Unmarshal(data, &batch); err != nil {
			return received, fmt.Errorf("decode tail batch: %w", err)
		}
		if batch.Stream == "access" {
			received += len(batch.Logs)
			fmt.Printf("Tail batch %s: %d records\n", batch.BatchID, len(batch.Logs))
		}
	}
	return received, nil
}

func accessLine(i int, now time.Time) string {
	ts := now.Add(-time.Duration(seedAccessLines-i) * time.Second)
	return fmt.Sprintf(`10.0.%d.%d - - [%s] "GET %s HTTP/1.1" %d %d "-" "%s"`,
		i%8, i%250,
		ts.Format("02/Jan/2006:15:04:05 -0700"),
		paths[i%len(paths)],
		statuses[i%len(statuses)],
		512+i%1024,
		userAgents[i%len(userAgents)])
}

func errorLine(i int, now time.Time) string {
	ts := now.Add(-time.Duration(seedErrorLines-i) * time.Minute)
	return fmt.Sprintf("%s [%s] %d#0: *%d scenario message",
		ts.Format("2006/01/02 15:04:05"),
		levels[i%len(levels)],
		1000+i%16,
		i)
}

func writeLines(path string, n int, line func(int) string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := file.WriteString(line(i) + "\n"); err != nil {
			_ = file.Close()
			return err
		}
	}
	return file.Close()
}

func getJSON(target string, out any) error {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(target)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
