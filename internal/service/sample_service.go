package service

import (
	"Pulse/internal/analytics"
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type SampleService interface {
	GetSeries(ctx context.Context, platform string, contentID int64, query *dto.SeriesQueryDTO) (*dto.SeriesDTO, error)
	GetGrowth(ctx context.Context, platform string, contentID int64, query *dto.GrowthQueryDTO) (*dto.GrowthDTO, error)
}

type SampleServiceImpl struct {
	snapshotRepo repository.SnapshotRepo
	contentRepo  repository.ContentRepo
}

func NewSampleService(snapshotRepo repository.SnapshotRepo, contentRepo repository.ContentRepo) SampleService {
	return &SampleServiceImpl{
		snapshotRepo: snapshotRepo,
		contentRepo:  contentRepo,
	}
}

// GetSeries 取内容的采样序列，计数字段名按平台映射表归一后返回
func (s *SampleServiceImpl) GetSeries(ctx context.Context, platform string, contentID int64, query *dto.SeriesQueryDTO) (*dto.SeriesDTO, error) {
	normalized, err := analytics.NormalizePlatform(platform)
	if err != nil {
		return nil, err
	}

	opts := seriesOptions(query)
	cacheKey := fmt.Sprintf("%s%s:%d:%d:%t", consts.SampleSeriesKey, normalized, contentID, opts.Limit, opts.Descending)
	value, err := redis.GetValue(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var cached *dto.SeriesDTO
		if err = json.Unmarshal([]byte(value), &cached); err == nil {
			return cached, nil
		}
	}

	series, err := s.loadSeries(ctx, normalized, contentID, opts)
	if err != nil {
		return nil, err
	}

	result := &dto.SeriesDTO{
		ContentID: fmt.Sprintf("%d", contentID),
		Platform:  string(normalized),
		Samples:   toSampleDTOs(normalized, series),
	}

	if jsonStr, marshalErr := json.Marshal(result); marshalErr == nil {
		_ = redis.SetWithExpiration(ctx, cacheKey, string(jsonStr), time.Minute*10)
	}

	return result, nil
}

// GetGrowth 计算窗口内增长。未给窗口时默认最近 90 天
func (s *SampleServiceImpl) GetGrowth(ctx context.Context, platform string, contentID int64, query *dto.GrowthQueryDTO) (*dto.GrowthDTO, error) {
	normalized, err := analytics.NormalizePlatform(platform)
	if err != nil {
		return nil, err
	}

	metric := analytics.Metric(query.Metric)
	if query.Metric == "" {
		metric = analytics.MetricViews
	}

	window, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}
	if window == nil {
		state := analytics.DefaultFilterState(time.Now())
		window = state.DateRange
	}

	// 增长基线取全序列首样本，始终按升序加载
	full, err := s.loadSeries(ctx, normalized, contentID, repository.SeriesOptions{Limit: consts.SnapshotSeriesLimit})
	if err != nil {
		return nil, err
	}

	windowed := analytics.WindowSamples(full, *window)
	growth, err := analytics.ComputeGrowth(full, windowed, metric, normalized)
	if err != nil {
		return nil, err
	}

	return &dto.GrowthDTO{
		Metric:     string(metric),
		Percentage: growth.Percentage,
		Absolute:   growth.Absolute,
	}, nil
}

func (s *SampleServiceImpl) loadSeries(ctx context.Context, platform analytics.Platform, contentID int64, opts repository.SeriesOptions) ([]analytics.Sample, error) {
	record, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrContentNotFound
	}

	return s.snapshotRepo.ListSeries(ctx, platform, contentID, opts)
}

// seriesOptions 归一序列查询条件：limit 缺省 consts.SnapshotSeriesLimit，缺省升序
func seriesOptions(query *dto.SeriesQueryDTO) repository.SeriesOptions {
	opts := repository.SeriesOptions{Limit: consts.SnapshotSeriesLimit}
	if query == nil {
		return opts
	}
	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	opts.Descending = !query.Ascending()
	return opts
}

func toSampleDTOs(platform analytics.Platform, series []analytics.Sample) []*dto.SampleDTO {
	viewField, _ := analytics.ResolveCounterField(platform, analytics.MetricViews)
	likeField, _ := analytics.ResolveCounterField(platform, analytics.MetricLikes)
	commentField, _ := analytics.ResolveCounterField(platform, analytics.MetricComments)

	samples := make([]*dto.SampleDTO, 0, len(series))
	for _, sample := range series {
		samples = append(samples, &dto.SampleDTO{
			SampledAt: sample.SampledAt,
			Views:     sample.Counters[viewField],
			Likes:     sample.Counters[likeField],
			Comments:  sample.Counters[commentField],
		})
	}
	return samples
}
