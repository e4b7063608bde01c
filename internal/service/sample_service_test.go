package service

import (
	"Pulse/internal/analytics"
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentRepo struct {
	repository.ContentRepo
	records map[int64]*model.ContentRecord
}

func (f *fakeContentRepo) GetByID(_ context.Context, inputID int64) (*model.ContentRecord, error) {
	return f.records[inputID], nil
}

type fakeSnapshotRepo struct {
	repository.SnapshotRepo
	series   map[int64][]analytics.Sample
	lastOpts repository.SeriesOptions
}

func (f *fakeSnapshotRepo) ListSeries(_ context.Context, _ analytics.Platform, contentID int64, opts repository.SeriesOptions) ([]analytics.Sample, error) {
	f.lastOpts = opts
	return f.series[contentID], nil
}

func newSampleServiceWithRepo(series map[int64][]analytics.Sample) (SampleService, *fakeSnapshotRepo) {
	records := make(map[int64]*model.ContentRecord)
	for id := range series {
		records[id] = &model.ContentRecord{InputID: id, Platform: string(analytics.PlatformYouTube)}
	}
	snapshotRepo := &fakeSnapshotRepo{series: series}
	return NewSampleService(snapshotRepo, &fakeContentRepo{records: records}), snapshotRepo
}

func newSampleServiceForTest(series map[int64][]analytics.Sample) SampleService {
	svc, _ := newSampleServiceWithRepo(series)
	return svc
}

func ytGrowthSample(contentID int64, sampledAt time.Time, views int64) analytics.Sample {
	return analytics.Sample{
		ContentID: contentID,
		SampledAt: sampledAt,
		Counters:  map[string]int64{"viewCount": views, "likeCount": 0, "commentCount": 0},
	}
}

func TestSeriesOptionsFromQuery(t *testing.T) {
	opts := seriesOptions(&dto.SeriesQueryDTO{})
	assert.Equal(t, consts.SnapshotSeriesLimit, opts.Limit)
	assert.False(t, opts.Descending)

	opts = seriesOptions(nil)
	assert.Equal(t, consts.SnapshotSeriesLimit, opts.Limit)
	assert.False(t, opts.Descending)

	desc := false
	opts = seriesOptions(&dto.SeriesQueryDTO{Limit: 5, Asc: &desc})
	assert.Equal(t, 5, opts.Limit)
	assert.True(t, opts.Descending)

	asc := true
	opts = seriesOptions(&dto.SeriesQueryDTO{Asc: &asc})
	assert.Equal(t, consts.SnapshotSeriesLimit, opts.Limit)
	assert.False(t, opts.Descending)
}

func TestGetGrowthLoadsFullAscendingSeries(t *testing.T) {
	now := time.Now()
	svc, snapshotRepo := newSampleServiceWithRepo(map[int64][]analytics.Sample{
		1: {
			ytGrowthSample(1, now.AddDate(0, 0, -2), 100),
			ytGrowthSample(1, now.AddDate(0, 0, -1), 200),
		},
	})

	_, err := svc.GetGrowth(context.Background(), "youtube", 1, &dto.GrowthQueryDTO{})
	require.NoError(t, err)

	assert.Equal(t, consts.SnapshotSeriesLimit, snapshotRepo.lastOpts.Limit)
	assert.False(t, snapshotRepo.lastOpts.Descending)
}

func TestGetGrowthDefaultWindow(t *testing.T) {
	now := time.Now()
	svc := newSampleServiceForTest(map[int64][]analytics.Sample{
		1: {
			ytGrowthSample(1, now.AddDate(0, 0, -10), 100),
			ytGrowthSample(1, now.AddDate(0, 0, -5), 150),
			ytGrowthSample(1, now.AddDate(0, 0, -1), 200),
		},
	})

	growth, err := svc.GetGrowth(context.Background(), "youtube", 1, &dto.GrowthQueryDTO{})
	require.NoError(t, err)

	assert.Equal(t, "views", growth.Metric)
	assert.Equal(t, int64(100), growth.Absolute)
	assert.InDelta(t, 100.0, growth.Percentage, 0.001)
}

func TestGetGrowthExplicitWindowUsesFullSeriesBaseline(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newSampleServiceForTest(map[int64][]analytics.Sample{
		1: {
			ytGrowthSample(1, base, 100),
			ytGrowthSample(1, base.AddDate(0, 0, 10), 150),
			ytGrowthSample(1, base.AddDate(0, 0, 20), 300),
		},
	})

	// 窗口只盖住后两个样本，基线仍取全序列首样本
	growth, err := svc.GetGrowth(context.Background(), "YouTube", 1, &dto.GrowthQueryDTO{
		StartDate: "2026-03-05",
		EndDate:   "2026-03-25",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(200), growth.Absolute)
	assert.InDelta(t, 200.0, growth.Percentage, 0.001)
}

func TestGetGrowthShortSeriesIsZero(t *testing.T) {
	now := time.Now()
	svc := newSampleServiceForTest(map[int64][]analytics.Sample{
		1: {ytGrowthSample(1, now.AddDate(0, 0, -1), 100)},
	})

	growth, err := svc.GetGrowth(context.Background(), "youtube", 1, &dto.GrowthQueryDTO{})
	require.NoError(t, err)

	assert.Zero(t, growth.Absolute)
	assert.Zero(t, growth.Percentage)
}

func TestGetGrowthUnknownContent(t *testing.T) {
	svc := newSampleServiceForTest(map[int64][]analytics.Sample{})

	_, err := svc.GetGrowth(context.Background(), "youtube", 42, &dto.GrowthQueryDTO{})
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestGetGrowthUnsupportedPlatform(t *testing.T) {
	svc := newSampleServiceForTest(map[int64][]analytics.Sample{})

	_, err := svc.GetGrowth(context.Background(), "vimeo", 1, &dto.GrowthQueryDTO{})
	assert.ErrorIs(t, err, analytics.ErrPlatformUnsupported)
}

func TestGetGrowthInvalidDateRange(t *testing.T) {
	now := time.Now()
	svc := newSampleServiceForTest(map[int64][]analytics.Sample{
		1: {ytGrowthSample(1, now, 100)},
	})

	_, err := svc.GetGrowth(context.Background(), "youtube", 1, &dto.GrowthQueryDTO{
		StartDate: "2026-03-25",
		EndDate:   "2026-03-05",
	})
	assert.ErrorIs(t, err, ErrDateRangeInvalid)
}
