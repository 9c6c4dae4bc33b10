// Package realtime implements the live delivery surface: WebSocket
// connections, the room hub and the session protocol spoken over it.
package realtime

import (
	"net/http"
	"strings"
)

// Platform classifies a live connection for the popup policy. Only the
// mobile/web distinction matters; exact OS detail stays in the device registry.
type Platform string

const (
	// PlatformMobile marks connections from the mobile apps.
	PlatformMobile Platform = "mobile"
	// PlatformWeb marks browser connections and anything unrecognized.
	PlatformWeb Platform = "web"
)

// mobileUserAgentMarkers are substrings that identify mobile clients when no
// explicit platform hint is present.
var mobileUserAgentMarkers = []string{
	"okhttp", "darwin", "cfnetwork", "dart", "android", "iphone", "ipad", "mobile",
}

// ClassifyPlatform decides whether an upgrading request comes from a mobile
// client. Explicit hints win: the X-Platform header first, then the platform
// query parameter. Only when both are absent does the User-Agent get sniffed.
// Anything unrecognized is web, the conservative default for popups.
func ClassifyPlatform(r *http.Request) Platform {
	if p := normalizePlatformHint(r.Header.Get("X-Platform")); p != "" {
		return p
	}
	if p := normalizePlatformHint(r.URL.Query().Get("platform")); p != "" {
		return p
	}

	userAgent := strings.ToLower(r.UserAgent())
	for _, marker := range mobileUserAgentMarkers {
		if strings.Contains(userAgent, marker) {
			return PlatformMobile
		}
	}

	return PlatformWeb
}

func normalizePlatformHint(hint string) Platform {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "ios", "android", "mobile":
		return PlatformMobile
	case "web", "desktop", "browser":
		return PlatformWeb
	default:
		return ""
	}
}
