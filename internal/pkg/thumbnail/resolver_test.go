package thumbnail

import (
	"Pulse/internal/analytics"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePassthrough(t *testing.T) {
	registry := NewRegistry()

	url := "https://i.ytimg.com/vi/abc/hqdefault.jpg"
	assert.Equal(t, url, registry.Resolve(analytics.PlatformYouTube, url))
}

func TestResolveKeepsFullURLForObjectStorePlatforms(t *testing.T) {
	registry := NewRegistry()

	url := "https://cdn.example.com/thumb.jpg"
	assert.Equal(t, url, registry.Resolve(analytics.PlatformInstagram, url))
	assert.Equal(t, url, registry.Resolve(analytics.PlatformTikTok, url))
}

func TestResolveEmptyAndUnknown(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, "", registry.Resolve(analytics.PlatformInstagram, ""))

	raw := "whatever.png"
	assert.Equal(t, raw, registry.Resolve(analytics.Platform("Vimeo"), raw))
}

func TestRegisterOverride(t *testing.T) {
	registry := NewRegistry()
	registry.Register(analytics.PlatformYouTube, func(raw string) string {
		return "cdn/" + raw
	})

	assert.Equal(t, "cdn/a.jpg", registry.Resolve(analytics.PlatformYouTube, "a.jpg"))
}
