package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt64(v int64) *int64    { return &v }
func ptrString(s string) *string { return &s }
func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Zero(t, stats.TotalViews)
	assert.Zero(t, stats.TotalLikes)
	assert.Zero(t, stats.TotalComments)
	assert.Zero(t, stats.AverageViewsPerPost)
	assert.Zero(t, stats.EngagementRate)

	assert.False(t, stats.EngagementRate != stats.EngagementRate, "engagement rate must not be NaN")
}

func TestAggregate_Totals(t *testing.T) {
	records := []ContentRecord{
		{Platform: PlatformYouTube, ViewCount: ptrInt64(1000), LikeCount: ptrInt64(50), CommentCount: ptrInt64(10)},
		{Platform: PlatformInstagram, ViewCount: ptrInt64(2000), LikeCount: ptrInt64(100), CommentCount: ptrInt64(0)},
		{Platform: PlatformTikTok, ViewCount: nil, LikeCount: nil, CommentCount: nil},
	}

	stats := Aggregate(records)

	assert.Equal(t, int64(3000), stats.TotalViews)
	assert.Equal(t, int64(150), stats.TotalLikes)
	assert.Equal(t, int64(10), stats.TotalComments)
	assert.InDelta(t, 1000.0, stats.AverageViewsPerPost, 1e-9)
	assert.InDelta(t, float64(150+10)/3000*100, stats.EngagementRate, 1e-9)
}

func TestAggregate_ZeroViews(t *testing.T) {
	records := []ContentRecord{
		{Platform: PlatformYouTube, ViewCount: ptrInt64(0), LikeCount: ptrInt64(5), CommentCount: ptrInt64(3)},
	}

	stats := Aggregate(records)

	assert.Zero(t, stats.EngagementRate)
	assert.Equal(t, int64(5), stats.TotalLikes)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	views := int64(7)
	records := []ContentRecord{{Platform: PlatformYouTube, ViewCount: &views}}

	_ = Aggregate(records)

	require.NotNil(t, records[0].ViewCount)
	assert.Equal(t, int64(7), *records[0].ViewCount)
}

func TestAggregate_EndToEndScenario(t *testing.T) {
	records := []ContentRecord{
		{ClientName: ptrString("A"), Platform: PlatformYouTube, ViewCount: ptrInt64(1000), LikeCount: ptrInt64(50), CommentCount: ptrInt64(10)},
		{ClientName: ptrString("B"), Platform: PlatformYouTube, ViewCount: ptrInt64(2000), LikeCount: ptrInt64(100), CommentCount: ptrInt64(0)},
	}

	pred := BuildFilter(FilterState{ClientName: "A", Platform: SelectAll})
	filtered := Filter(records, pred)
	require.Len(t, filtered, 1)

	stats := Aggregate(filtered)

	assert.Equal(t, int64(1000), stats.TotalViews)
	assert.Equal(t, int64(50), stats.TotalLikes)
	assert.Equal(t, int64(10), stats.TotalComments)
	assert.InDelta(t, 6.0, stats.EngagementRate, 1e-9)
	assert.InDelta(t, 1000.0, stats.AverageViewsPerPost, 1e-9)
}
