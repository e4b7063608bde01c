package repository

import (
	"Pulse/internal/analytics"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepo 按平台分表存放采样序列。三张表计数列名各不相同，
// 对外统一转成 analytics.Sample，列名差异由 analytics 的字段映射表消化。
type SnapshotRepo interface {
	SaveOrUpdate(ctx context.Context, platform analytics.Platform, sample analytics.Sample) error
	ListSeries(ctx context.Context, platform analytics.Platform, contentID int64, opts SeriesOptions) ([]analytics.Sample, error)
}

// SeriesOptions 采样序列查询选项。Limit 非正时取 consts.SnapshotSeriesLimit
type SeriesOptions struct {
	Limit      int
	Descending bool
}

func (o SeriesOptions) limit() int {
	if o.Limit <= 0 {
		return consts.SnapshotSeriesLimit
	}
	return o.Limit
}

func (o SeriesOptions) order() string {
	if o.Descending {
		return "sampled_at DESC"
	}
	return "sampled_at ASC"
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

// SaveOrUpdate 采用 Upsert 逻辑。同一 content_id + sampled_at 重复写入时刷新计数
func (r *snapshotRepoImpl) SaveOrUpdate(ctx context.Context, platform analytics.Platform, sample analytics.Sample) error {
	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "content_id"}, {Name: "sampled_at"}},
	}

	field := func(metric analytics.Metric) int64 {
		name, err := analytics.ResolveCounterField(platform, metric)
		if err != nil {
			return 0
		}
		return sample.Counters[name]
	}

	switch platform {
	case analytics.PlatformYouTube:
		onConflict.DoUpdates = clause.AssignmentColumns([]string{"viewCount", "likeCount", "commentCount"})
		return r.db.WithContext(ctx).Clauses(onConflict).Create(&model.YouTubeSnapshot{
			ContentID:    sample.ContentID,
			SampledAt:    sample.SampledAt,
			ViewCount:    field(analytics.MetricViews),
			LikeCount:    field(analytics.MetricLikes),
			CommentCount: field(analytics.MetricComments),
		}).Error
	case analytics.PlatformInstagram:
		onConflict.DoUpdates = clause.AssignmentColumns([]string{"videoViewCount", "likeCount", "commentCount"})
		return r.db.WithContext(ctx).Clauses(onConflict).Create(&model.InstagramSnapshot{
			ContentID:      sample.ContentID,
			SampledAt:      sample.SampledAt,
			VideoViewCount: field(analytics.MetricViews),
			LikeCount:      field(analytics.MetricLikes),
			CommentCount:   field(analytics.MetricComments),
		}).Error
	case analytics.PlatformTikTok:
		onConflict.DoUpdates = clause.AssignmentColumns([]string{"video_view_count", "video_like_count", "video_comment_count"})
		return r.db.WithContext(ctx).Clauses(onConflict).Create(&model.TikTokSnapshot{
			ContentID:         sample.ContentID,
			SampledAt:         sample.SampledAt,
			VideoViewCount:    field(analytics.MetricViews),
			VideoLikeCount:    field(analytics.MetricLikes),
			VideoCommentCount: field(analytics.MetricComments),
		}).Error
	default:
		return analytics.ErrPlatformUnsupported
	}
}

// ListSeries 取某条内容的采样序列，排序方向与条数上限随 opts
func (r *snapshotRepoImpl) ListSeries(ctx context.Context, platform analytics.Platform, contentID int64, opts SeriesOptions) ([]analytics.Sample, error) {
	switch platform {
	case analytics.PlatformYouTube:
		rows := make([]*model.YouTubeSnapshot, 0)
		if err := r.seriesQuery(ctx, contentID, opts).Find(&rows).Error; err != nil {
			return nil, err
		}
		samples := make([]analytics.Sample, 0, len(rows))
		for _, row := range rows {
			samples = append(samples, row.ToSample())
		}
		return samples, nil
	case analytics.PlatformInstagram:
		rows := make([]*model.InstagramSnapshot, 0)
		if err := r.seriesQuery(ctx, contentID, opts).Find(&rows).Error; err != nil {
			return nil, err
		}
		samples := make([]analytics.Sample, 0, len(rows))
		for _, row := range rows {
			samples = append(samples, row.ToSample())
		}
		return samples, nil
	case analytics.PlatformTikTok:
		rows := make([]*model.TikTokSnapshot, 0)
		if err := r.seriesQuery(ctx, contentID, opts).Find(&rows).Error; err != nil {
			return nil, err
		}
		samples := make([]analytics.Sample, 0, len(rows))
		for _, row := range rows {
			samples = append(samples, row.ToSample())
		}
		return samples, nil
	default:
		return nil, analytics.ErrPlatformUnsupported
	}
}

func (r *snapshotRepoImpl) seriesQuery(ctx context.Context, contentID int64, opts SeriesOptions) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order(opts.order()).
		Limit(opts.limit())
}
