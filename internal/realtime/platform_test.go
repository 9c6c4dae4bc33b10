package realtime

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPlatform(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		query     string
		userAgent string
		expected  Platform
	}{
		{
			name:     "ios header",
			header:   "ios",
			expected: PlatformMobile,
		},
		{
			name:     "android header mixed case",
			header:   "Android",
			expected: PlatformMobile,
		},
		{
			name:     "web header",
			header:   "web",
			expected: PlatformWeb,
		},
		{
			name:      "header beats user agent",
			header:    "web",
			userAgent: "okhttp/4.12.0",
			expected:  PlatformWeb,
		},
		{
			name:     "query hint",
			query:    "mobile",
			expected: PlatformMobile,
		},
		{
			name:     "header beats query",
			header:   "desktop",
			query:    "ios",
			expected: PlatformWeb,
		},
		{
			name:      "unknown hint falls through to user agent",
			header:    "smartfridge",
			userAgent: "Dart/3.2 (dart:io)",
			expected:  PlatformMobile,
		},
		{
			name:      "okhttp user agent",
			userAgent: "okhttp/4.12.0",
			expected:  PlatformMobile,
		},
		{
			name:      "iphone user agent",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
			expected:  PlatformMobile,
		},
		{
			name:      "desktop browser user agent",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0",
			expected:  PlatformWeb,
		},
		{
			name:     "nothing at all defaults to web",
			expected: PlatformWeb,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/ws"
			if tt.query != "" {
				target += "?platform=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set("X-Platform", tt.header)
			}
			if tt.userAgent != "" {
				req.Header.Set("User-Agent", tt.userAgent)
			}

			assert.Equal(t, tt.expected, ClassifyPlatform(req))
		})
	}
}
