package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ytSample(day int, views int64) Sample {
	return Sample{
		SampledAt: time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC),
		Counters:  map[string]int64{"viewCount": views},
	}
}

func TestComputeGrowth_BaselineFromFullSeries(t *testing.T) {
	full := []Sample{ytSample(1, 100), ytSample(2, 150), ytSample(3, 200)}
	windowed := full[1:]

	growth, err := ComputeGrowth(full, windowed, MetricViews, PlatformYouTube)

	require.NoError(t, err)
	assert.Equal(t, int64(100), growth.Absolute)
	assert.InDelta(t, 100.0, growth.Percentage, 1e-9)
}

func TestComputeGrowth_ShortSeries(t *testing.T) {
	full := []Sample{ytSample(1, 100)}

	growth, err := ComputeGrowth(full, full, MetricViews, PlatformYouTube)

	require.NoError(t, err)
	assert.Zero(t, growth.Absolute)
	assert.Zero(t, growth.Percentage)
}

func TestComputeGrowth_ZeroBaseline(t *testing.T) {
	full := []Sample{ytSample(1, 0), ytSample(2, 50)}

	growth, err := ComputeGrowth(full, full, MetricViews, PlatformYouTube)

	require.NoError(t, err)
	assert.Equal(t, int64(50), growth.Absolute)
	assert.Zero(t, growth.Percentage)
}

func TestComputeGrowth_Regression(t *testing.T) {
	// 平台侧修正导致计数回落，按合法负增长处理
	full := []Sample{ytSample(1, 200), ytSample(2, 150)}

	growth, err := ComputeGrowth(full, full, MetricViews, PlatformYouTube)

	require.NoError(t, err)
	assert.Equal(t, int64(-50), growth.Absolute)
	assert.InDelta(t, -25.0, growth.Percentage, 1e-9)
}

func TestComputeGrowth_UnsupportedPlatform(t *testing.T) {
	full := []Sample{ytSample(1, 100), ytSample(2, 200)}

	_, err := ComputeGrowth(full, full, MetricViews, Platform("Vine"))

	assert.ErrorIs(t, err, ErrPlatformUnsupported)
}

func TestComputeGrowth_PerPlatformFieldResolution(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		metric   Metric
		field    string
	}{
		{"youtube views", PlatformYouTube, MetricViews, "viewCount"},
		{"instagram views", PlatformInstagram, MetricViews, "videoViewCount"},
		{"tiktok views", PlatformTikTok, MetricViews, "video_view_count"},
		{"tiktok likes", PlatformTikTok, MetricLikes, "video_like_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := ResolveCounterField(tt.platform, tt.metric)
			require.NoError(t, err)
			assert.Equal(t, tt.field, field)

			full := []Sample{
				{SampledAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Counters: map[string]int64{field: 10}},
				{SampledAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), Counters: map[string]int64{field: 30}},
			}
			growth, err := ComputeGrowth(full, full, tt.metric, tt.platform)
			require.NoError(t, err)
			assert.Equal(t, int64(20), growth.Absolute)
		})
	}
}

func TestWindowSamples(t *testing.T) {
	full := []Sample{ytSample(1, 100), ytSample(5, 150), ytSample(9, 200)}
	window := DateRange{
		Start: time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC),
	}

	windowed := WindowSamples(full, window)

	require.Len(t, windowed, 2)
	assert.Equal(t, int64(150), windowed[0].Counters["viewCount"])
	assert.Equal(t, int64(200), windowed[1].Counters["viewCount"])
}
