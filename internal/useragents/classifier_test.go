package useragents

import (
	"testing"

	"log-viewer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(16)

	tests := []struct {
		name      string
		userAgent string
		expected  models.UserAgentInfo
	}{
		{
			name:      "firefox on windows",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0",
			expected:  models.UserAgentInfo{Browser: "Firefox", OS: "Windows"},
		},
		{
			name:      "chrome on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			expected:  models.UserAgentInfo{Browser: "Chrome", OS: "Linux"},
		},
		{
			name:      "placeholder dash",
			userAgent: "-",
			expected:  models.UserAgentInfo{Browser: models.UnknownLabel, OS: models.UnknownLabel},
		},
		{
			name:      "empty",
			userAgent: "",
			expected:  models.UserAgentInfo{Browser: models.UnknownLabel, OS: models.UnknownLabel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.userAgent))
		})
	}
}

func TestClassifier_NeverReturnsEmptyLabels(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(16)

	info := classifier.Classify("\x00\x01 not a browser ((( ")
	assert.NotEmpty(t, info.Browser)
	assert.NotEmpty(t, info.OS)
}

func TestClassifier_CachesResults(t *testing.T) {
	t.Parallel()

	c := NewClassifier(1).(*classifier)
	ua := "curl/8.4.0"

	first := c.Classify(ua)
	assert.Equal(t, 1, c.cache.Len())

	cached, ok := c.cache.Get(ua)
	assert.True(t, ok)
	assert.Equal(t, first, cached)

	// Capacity 1 evicts the previous entry
	c.Classify("Wget/1.21")
	_, ok = c.cache.Get(ua)
	assert.False(t, ok)
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPlaceholder(""))
	assert.True(t, IsPlaceholder(" - "))
	assert.False(t, IsPlaceholder("curl/8.4.0"))
}
