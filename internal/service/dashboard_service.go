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

type DashboardService interface {
	Summary(ctx context.Context, query *dto.ContentQueryDTO) (*dto.DashboardSummaryDTO, error)
}

type DashboardServiceImpl struct {
	contentRepo repository.ContentRepo
	guard       *RefreshGuard
}

func NewDashboardService(contentRepo repository.ContentRepo) DashboardService {
	return &DashboardServiceImpl{
		contentRepo: contentRepo,
		guard:       NewRefreshGuard(),
	}
}

// Summary 总览聚合。并发刷新时只有最新一次的结果允许回写缓存，
// 旧查询晚归不会用过期数据覆盖新数据。
func (s *DashboardServiceImpl) Summary(ctx context.Context, query *dto.ContentQueryDTO) (*dto.DashboardSummaryDTO, error) {
	cacheKey := summaryCacheKey(query)

	value, err := redis.GetValue(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var cached *dto.DashboardSummaryDTO
		if err = json.Unmarshal([]byte(value), &cached); err == nil {
			return cached, nil
		}
	}

	seq := s.guard.Begin(cacheKey)

	state, repoFilter, err := buildFilterState(query)
	if err != nil {
		return nil, err
	}

	rows, err := s.contentRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	records := toAnalyticsRecords(rows)
	records = analytics.Filter(records, analytics.BuildFilter(state))

	summary := buildSummary(records)

	s.guard.Commit(cacheKey, seq, func() {
		if jsonStr, marshalErr := json.Marshal(summary); marshalErr == nil {
			_ = redis.SetWithExpiration(ctx, cacheKey, string(jsonStr), time.Minute*10)
		}
	})

	return summary, nil
}

func buildSummary(records []analytics.ContentRecord) *dto.DashboardSummaryDTO {
	total := analytics.Aggregate(records)

	byPlatform := make(map[analytics.Platform][]analytics.ContentRecord)
	for _, record := range records {
		byPlatform[record.Platform] = append(byPlatform[record.Platform], record)
	}

	platforms := make([]*dto.PlatformBreakdownDTO, 0, len(byPlatform))
	for _, platform := range analytics.KnownPlatforms() {
		group, ok := byPlatform[platform]
		if !ok {
			continue
		}
		stats := analytics.Aggregate(group)
		platforms = append(platforms, &dto.PlatformBreakdownDTO{
			Platform:            string(platform),
			PostCount:           len(group),
			TotalViews:          stats.TotalViews,
			TotalLikes:          stats.TotalLikes,
			TotalComments:       stats.TotalComments,
			AverageViewsPerPost: stats.AverageViewsPerPost,
			EngagementRate:      stats.EngagementRate,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalViews:          total.TotalViews,
		TotalLikes:          total.TotalLikes,
		TotalComments:       total.TotalComments,
		AverageViewsPerPost: total.AverageViewsPerPost,
		EngagementRate:      total.EngagementRate,
		PostCount:           len(records),
		Platforms:           platforms,
	}
}

func summaryCacheKey(query *dto.ContentQueryDTO) string {
	return consts.DashboardSummaryKey + fmt.Sprintf("%s:%s:%s:%s",
		query.Client, query.Platform, query.StartDate, query.EndDate)
}
