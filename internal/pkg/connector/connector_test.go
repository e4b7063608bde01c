package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/abc123", "abc123"},
	}

	for _, tc := range cases {
		got, err := extractYouTubeID(tc.link)
		require.NoError(t, err, tc.link)
		assert.Equal(t, tc.want, got)
	}

	_, err := extractYouTubeID("https://www.youtube.com/feed/subscriptions")
	assert.Error(t, err)
}

func TestParseTikTokPage(t *testing.T) {
	html := `<html><head><script id="` + tiktokStateScriptID + `" type="application/json">
		{"__DEFAULT_SCOPE__":{"webapp.video-detail":{"itemInfo":{"itemStruct":{
			"desc":"测试视频\n第二行",
			"createTime":1700000000,
			"author":{"nickname":"creator"},
			"video":{"cover":"https://p16.tiktokcdn.com/c.jpg"},
			"stats":{"playCount":1000,"diggCount":50,"commentCount":8}
		}}}}}
	</script></head><body></body></html>`

	counters, err := parseTikTokPage(html)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), counters.Views)
	assert.Equal(t, int64(50), counters.Likes)
	assert.Equal(t, int64(8), counters.Comments)
	assert.Equal(t, "测试视频", counters.Title)
	assert.Equal(t, "creator", counters.CreatorName)
	assert.Equal(t, "https://p16.tiktokcdn.com/c.jpg", counters.ThumbnailURL)
	require.NotNil(t, counters.PublishedAt)
	assert.Equal(t, int64(1700000000), counters.PublishedAt.Unix())
}

func TestParseTikTokPageMissingState(t *testing.T) {
	_, err := parseTikTokPage(`<html><body>verify to continue</body></html>`)
	assert.Error(t, err)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(42), parseCount("42"))
	assert.Equal(t, int64(0), parseCount(""))
	assert.Equal(t, int64(0), parseCount("n/a"))
}
