package useragents

import (
	"strings"

	"log-viewer/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mileusna/useragent"
)

const defaultCacheSize = 4096

//go:generate mockgen -source=classifier.go -destination=./mocks/classifier_mock.go -package=mocks
type Classifier interface {
	// Classify resolves browser and OS labels. It never fails; unresolvable parts are models.UnknownLabel.
	Classify(userAgent string) models.UserAgentInfo
}

type classifier struct {
	cache *lru.Cache[string, models.UserAgentInfo]
}

// NewClassifier returns a Classifier memoising up to cacheSize distinct user-agent strings.
func NewClassifier(cacheSize int) Classifier {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	// lru.New only errors on non-positive size which we guard above.
	cache, _ := lru.New[string, models.UserAgentInfo](cacheSize)
	return &classifier{cache: cache}
}

func (c *classifier) Classify(userAgent string) models.UserAgentInfo {
	if IsPlaceholder(userAgent) {
		return models.UnknownUserAgent()
	}
	if info, ok := c.cache.Get(userAgent); ok {
		return info
	}

	info := classify(userAgent)
	c.cache.Add(userAgent, info)
	return info
}

func classify(userAgent string) models.UserAgentInfo {
	parsed := useragent.Parse(userAgent)

	info := models.UnknownUserAgent()
	if parsed.Name != "" {
		info.Browser = parsed.Name
	}
	if parsed.OS != "" {
		info.OS = parsed.OS
	}
	return info
}

// IsPlaceholder reports whether a user-agent field carries no information ("" or "-").
func IsPlaceholder(userAgent string) bool {
	trimmed := strings.TrimSpace(userAgent)
	return trimmed == "" || trimmed == "-"
}
