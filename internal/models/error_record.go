package models

import "strings"

// ErrorLevel is the severity token of an error log line.
type ErrorLevel string

const (
	LevelEmerg  ErrorLevel = "emerg"
	LevelAlert  ErrorLevel = "alert"
	LevelCrit   ErrorLevel = "crit"
	LevelError  ErrorLevel = "error"
	LevelWarn   ErrorLevel = "warn"
	LevelNotice ErrorLevel = "notice"
	LevelInfo   ErrorLevel = "info"
)

// KnownErrorLevels lists the levels statistics are bucketed by, most severe first.
var KnownErrorLevels = []ErrorLevel{LevelEmerg, LevelAlert, LevelCrit, LevelError, LevelWarn, LevelNotice, LevelInfo}

// Known reports whether the level is one of KnownErrorLevels. Comparison ignores case.
func (l ErrorLevel) Known() bool {
	_, ok := l.Normalize()
	return ok
}

// Normalize returns the canonical lower-case level and whether it is known.
func (l ErrorLevel) Normalize() (ErrorLevel, bool) {
	lower := ErrorLevel(strings.ToLower(string(l)))
	for _, known := range KnownErrorLevels {
		if lower == known {
			return known, true
		}
	}
	return lower, false
}

// ErrorRecord is one parsed line of the error log. Message is the rest of the line verbatim.
type ErrorRecord struct {
	TimestampRaw string     `json:"timestamp"`
	Level        ErrorLevel `json:"level"`
	Message      string     `json:"message"`
}

// ErrorLogView is an ErrorRecord as served to clients.
type ErrorLogView struct {
	ErrorRecord
}

func (v *ErrorLogView) Stream() LogStream { return StreamError }
