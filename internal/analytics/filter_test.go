package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilter_ClientAndPlatformAnd(t *testing.T) {
	state := FilterState{ClientName: "Acme", Platform: string(PlatformYouTube)}
	pred := BuildFilter(state)

	match := ContentRecord{ClientName: ptrString("Acme"), Platform: PlatformYouTube}
	wrongClient := ContentRecord{ClientName: ptrString("Other"), Platform: PlatformYouTube}
	wrongPlatform := ContentRecord{ClientName: ptrString("Acme"), Platform: PlatformTikTok}
	nilClient := ContentRecord{ClientName: nil, Platform: PlatformYouTube}

	assert.True(t, pred(match))
	assert.False(t, pred(wrongClient), "AND semantics: client must match")
	assert.False(t, pred(wrongPlatform), "AND semantics: platform must match")
	assert.False(t, pred(nilClient))
}

func TestBuildFilter_AllBypasses(t *testing.T) {
	pred := BuildFilter(FilterState{ClientName: SelectAll, Platform: SelectAll})

	assert.True(t, pred(ContentRecord{ClientName: nil, Platform: PlatformTikTok}))
	assert.True(t, pred(ContentRecord{ClientName: ptrString("Any"), Platform: PlatformYouTube}))
}

func TestBuildFilter_DateRangeBoundaries(t *testing.T) {
	loc := time.UTC
	state := FilterState{
		ClientName: SelectAll,
		Platform:   SelectAll,
		DateRange: &DateRange{
			Start: time.Date(2026, 3, 1, 14, 30, 0, 0, loc),
			End:   time.Date(2026, 3, 10, 9, 0, 0, 0, loc),
		},
	}
	pred := BuildFilter(state)

	endOfDay := time.Date(2026, 3, 10, 23, 59, 59, int(999*time.Millisecond), loc)
	justAfter := endOfDay.Add(time.Millisecond)
	startOfDay := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	justBefore := startOfDay.Add(-time.Millisecond)

	assert.True(t, pred(ContentRecord{PublishedAt: ptrTime(endOfDay)}), "end-of-day boundary is inclusive")
	assert.False(t, pred(ContentRecord{PublishedAt: ptrTime(justAfter)}), "one millisecond later is excluded")
	assert.True(t, pred(ContentRecord{PublishedAt: ptrTime(startOfDay)}), "start-of-day boundary is inclusive")
	assert.False(t, pred(ContentRecord{PublishedAt: ptrTime(justBefore)}))
	assert.False(t, pred(ContentRecord{PublishedAt: nil}))
}

func TestBuildFilter_NilRangeBypassesDate(t *testing.T) {
	pred := BuildFilter(FilterState{ClientName: SelectAll, Platform: SelectAll, DateRange: nil})

	assert.True(t, pred(ContentRecord{PublishedAt: nil}))
	assert.True(t, pred(ContentRecord{PublishedAt: ptrTime(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC))}))
}

func TestDefaultFilterState(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	state := DefaultFilterState(now)

	assert.Equal(t, SelectAll, state.ClientName)
	assert.Equal(t, SelectAll, state.Platform)
	require.NotNil(t, state.DateRange)
	assert.Equal(t, now.AddDate(0, 0, -90), state.DateRange.Start)
	assert.Equal(t, now, state.DateRange.End)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := []ContentRecord{
		{ClientName: ptrString("A"), Platform: PlatformYouTube},
		{ClientName: ptrString("B"), Platform: PlatformYouTube},
	}

	filtered := Filter(records, BuildFilter(FilterState{ClientName: "A", Platform: SelectAll}))

	require.Len(t, filtered, 1)
	assert.Len(t, records, 2)
	assert.Equal(t, "B", *records[1].ClientName)
}
