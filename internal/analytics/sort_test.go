package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortBy_NumericAscDesc(t *testing.T) {
	records := []ContentRecord{
		{ID: 1, ViewCount: ptrInt64(300)},
		{ID: 2, ViewCount: ptrInt64(100)},
		{ID: 3, ViewCount: ptrInt64(200)},
	}

	asc := SortBy(records, SortByViews, SortAsc)
	desc := SortBy(records, SortByViews, SortDesc)

	assert.Equal(t, []int64{2, 3, 1}, ids(asc))
	assert.Equal(t, []int64{1, 3, 2}, ids(desc))
	// 入参顺序不变
	assert.Equal(t, []int64{1, 2, 3}, ids(records))
}

func TestSortBy_Stability(t *testing.T) {
	records := []ContentRecord{
		{ID: 1, ViewCount: ptrInt64(100)},
		{ID: 2, ViewCount: ptrInt64(100)},
		{ID: 3, ViewCount: ptrInt64(100)},
		{ID: 4, ViewCount: ptrInt64(50)},
	}

	asc := SortBy(records, SortByViews, SortAsc)
	assert.Equal(t, []int64{4, 1, 2, 3}, ids(asc), "equal keys keep input order ascending")

	desc := SortBy(records, SortByViews, SortDesc)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(desc), "equal keys keep input order descending")
}

func TestSortBy_NullsFirstAscLastDesc(t *testing.T) {
	records := []ContentRecord{
		{ID: 1, ViewCount: ptrInt64(10)},
		{ID: 2, ViewCount: nil},
		{ID: 3, ViewCount: ptrInt64(5)},
	}

	asc := SortBy(records, SortByViews, SortAsc)
	assert.Equal(t, []int64{2, 3, 1}, ids(asc))

	desc := SortBy(records, SortByViews, SortDesc)
	assert.Equal(t, []int64{1, 3, 2}, ids(desc))
}

func TestSortBy_StringCodePoint(t *testing.T) {
	records := []ContentRecord{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "apple"},
	}

	asc := SortBy(records, SortByTitle, SortAsc)
	// 大写码点在小写之前
	assert.Equal(t, []int64{2, 3, 1}, ids(asc))
}

func TestSortBy_Timestamp(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []ContentRecord{
		{ID: 1, PublishedAt: ptrTime(late)},
		{ID: 2, PublishedAt: nil},
		{ID: 3, PublishedAt: ptrTime(early)},
	}

	asc := SortBy(records, SortByPublishedAt, SortAsc)
	require.Equal(t, []int64{2, 3, 1}, ids(asc))
}

func ids(records []ContentRecord) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
