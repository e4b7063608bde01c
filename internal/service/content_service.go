package service

import (
	"Pulse/internal/analytics"
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/pkg/thumbnail"
	"Pulse/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
)

const defaultTopLimit = 10

type ContentService interface {
	ListContent(ctx context.Context, query *dto.ContentQueryDTO) ([]*dto.ContentDTO, error)
	TopContent(ctx context.Context, query *dto.TopQueryDTO) ([]*dto.ContentDTO, error)
	RecentContent(ctx context.Context, limit int) ([]*dto.ContentDTO, error)
	ListClients(ctx context.Context) ([]string, error)
}

type ContentServiceImpl struct {
	contentRepo repository.ContentRepo
	thumbnails  *thumbnail.Registry
}

func NewContentService(contentRepo repository.ContentRepo, thumbnails *thumbnail.Registry) ContentService {
	return &ContentServiceImpl{
		contentRepo: contentRepo,
		thumbnails:  thumbnails,
	}
}

// ListContent 条件查询。SQL 先粗筛，内存谓词再兜底一遍，
// 两层条件语义一致，重复过滤结果不变。
func (s *ContentServiceImpl) ListContent(ctx context.Context, query *dto.ContentQueryDTO) ([]*dto.ContentDTO, error) {
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

	if query.SortBy != "" {
		key, direction, sortErr := parseSort(query.SortBy, query.SortDir)
		if sortErr != nil {
			return nil, sortErr
		}
		records = analytics.SortBy(records, key, direction)
	}

	return s.toContentDTOs(records), nil
}

// TopContent 按单项计数取排行。无条件的默认查询走缓存
func (s *ContentServiceImpl) TopContent(ctx context.Context, query *dto.TopQueryDTO) ([]*dto.ContentDTO, error) {
	metric := query.Metric
	if metric == "" {
		metric = string(analytics.MetricViews)
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultTopLimit
	}

	cacheable := query.Client == "" && query.Platform == "" &&
		query.StartDate == "" && query.EndDate == "" && limit == defaultTopLimit
	cacheKey := consts.ContentTopKey + metric

	if cacheable {
		value, err := redis.GetValue(ctx, cacheKey)
		if err != nil {
			return nil, err
		}
		if value != "" {
			var cached []*dto.ContentDTO
			if err = json.Unmarshal([]byte(value), &cached); err == nil {
				return cached, nil
			}
		}
	}

	state, repoFilter, err := buildFilterState(&query.ContentQueryDTO)
	if err != nil {
		return nil, err
	}

	rows, err := s.contentRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	records := toAnalyticsRecords(rows)
	records = analytics.Filter(records, analytics.BuildFilter(state))
	records = analytics.SortBy(records, metricSortKey(analytics.Metric(metric)), analytics.SortDesc)

	if len(records) > limit {
		records = records[:limit]
	}
	result := s.toContentDTOs(records)

	if cacheable {
		if jsonStr, marshalErr := json.Marshal(result); marshalErr == nil {
			_ = redis.SetWithExpiration(ctx, cacheKey, string(jsonStr), time.Minute*10)
		}
	}

	return result, nil
}

func (s *ContentServiceImpl) RecentContent(ctx context.Context, limit int) ([]*dto.ContentDTO, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	rows, err := s.contentRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return s.toContentDTOs(toAnalyticsRecords(rows)), nil
}

func (s *ContentServiceImpl) ListClients(ctx context.Context) ([]string, error) {
	value, err := redis.GetValue(ctx, consts.DistinctClientsKey)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var cached []string
		if err = json.Unmarshal([]byte(value), &cached); err == nil {
			return cached, nil
		}
	}

	clients, err := s.contentRepo.ListDistinctClients(ctx)
	if err != nil {
		return nil, err
	}

	if jsonStr, marshalErr := json.Marshal(clients); marshalErr == nil {
		_ = redis.SetWithExpiration(ctx, consts.DistinctClientsKey, string(jsonStr), time.Hour*1)
	}

	return clients, nil
}

func (s *ContentServiceImpl) toContentDTOs(records []analytics.ContentRecord) []*dto.ContentDTO {
	result := make([]*dto.ContentDTO, 0, len(records))
	for i := range records {
		record := &records[i]
		result = append(result, &dto.ContentDTO{
			ID:           record.ID,
			Client:       record.ClientName,
			Platform:     string(record.Platform),
			Title:        record.Title,
			Description:  record.Description,
			CreatorName:  record.CreatorName,
			ThumbnailURL: s.thumbnails.Resolve(record.Platform, record.ThumbnailURL),
			ExternalLink: record.ExternalLink,
			PublishedAt:  record.PublishedAt,
			Views:        record.ViewCount,
			Likes:        record.LikeCount,
			Comments:     record.CommentCount,
		})
	}
	return result
}

func toAnalyticsRecords(rows []*model.ContentRecord) []analytics.ContentRecord {
	records := make([]analytics.ContentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToAnalytics())
	}
	return records
}

// buildFilterState 将查询参数转成内存谓词状态和 SQL 条件
func buildFilterState(query *dto.ContentQueryDTO) (analytics.FilterState, repository.ContentFilter, error) {
	state := analytics.FilterState{
		ClientName: query.Client,
		Platform:   "",
	}
	repoFilter := repository.ContentFilter{}

	if query.Client != "" && query.Client != analytics.SelectAll {
		repoFilter.Client = query.Client
	}

	if query.Platform != "" && query.Platform != analytics.SelectAll {
		platform, err := analytics.NormalizePlatform(query.Platform)
		if err != nil {
			return state, repoFilter, err
		}
		state.Platform = string(platform)
		repoFilter.Platform = string(platform)
	}

	dateRange, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return state, repoFilter, err
	}
	if dateRange != nil {
		state.DateRange = dateRange
		start := analytics.StartOfDay(dateRange.Start)
		end := analytics.EndOfDay(dateRange.End)
		repoFilter.Start = &start
		repoFilter.End = &end
	}

	return state, repoFilter, nil
}

func parseDateRange(startDate string, endDate string) (*analytics.DateRange, error) {
	if startDate == "" && endDate == "" {
		return nil, nil
	}
	if startDate == "" || endDate == "" {
		return nil, ErrDateRangeInvalid
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, ErrDateRangeInvalid
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, ErrDateRangeInvalid
	}
	if end.Before(start) {
		return nil, ErrDateRangeInvalid
	}

	return &analytics.DateRange{Start: start, End: end}, nil
}

func parseSort(sortBy string, sortDir string) (analytics.SortKey, analytics.SortDirection, error) {
	key := analytics.SortKey(sortBy)
	switch key {
	case analytics.SortByClient, analytics.SortByTitle, analytics.SortByPlatform, analytics.SortByCreator,
		analytics.SortByViews, analytics.SortByLikes, analytics.SortByComments, analytics.SortByPublishedAt:
	default:
		return "", "", ErrSortKeyInvalid
	}

	direction := analytics.SortAsc
	if sortDir == string(analytics.SortDesc) {
		direction = analytics.SortDesc
	}

	return key, direction, nil
}

func metricSortKey(metric analytics.Metric) analytics.SortKey {
	switch metric {
	case analytics.MetricLikes:
		return analytics.SortByLikes
	case analytics.MetricComments:
		return analytics.SortByComments
	default:
		return analytics.SortByViews
	}
}
