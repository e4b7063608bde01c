package analytics

import (
	"errors"
	"time"
)

var (
	// ErrPlatformUnsupported 平台标签无法解析
	ErrPlatformUnsupported = errors.New("不支持的平台")
	// ErrMetricUnsupported 逻辑指标无法解析
	ErrMetricUnsupported = errors.New("不支持的指标")
)

// ContentRecord 聚合的基本单元：某平台上已发布的一条内容及其最新计数。
// 计数与客户名允许为空，聚合时按 0 处理。
type ContentRecord struct {
	ID           int64
	ClientName   *string
	Platform     Platform
	Title        string
	Description  string
	CreatorName  string
	ThumbnailURL string
	ExternalLink string
	PublishedAt  *time.Time
	ViewCount    *int64
	LikeCount    *int64
	CommentCount *int64
}

// Sample 某条内容计数器的一次带时间戳快照。
// Counters 以各平台快照表的物理字段名为键，读取前先经 ResolveCounterField。
type Sample struct {
	ContentID int64
	SampledAt time.Time
	Counters  map[string]int64
}

// AggregateStats 由当前记录集合纯函数推导，从不落库
type AggregateStats struct {
	TotalViews          int64   `json:"total_views"`
	TotalLikes          int64   `json:"total_likes"`
	TotalComments       int64   `json:"total_comments"`
	AverageViewsPerPost float64 `json:"average_views_per_post"`
	EngagementRate      float64 `json:"engagement_rate"`
}

// Growth 时间窗口内指标的增长
type Growth struct {
	Percentage float64 `json:"percentage"`
	Absolute   int64   `json:"absolute"`
}

// DateRange 日历日期区间，两端闭区间
type DateRange struct {
	Start time.Time
	End   time.Time
}

// FilterState 用户当前的客户/平台/日期筛选
type FilterState struct {
	ClientName string
	Platform   string
	DateRange  *DateRange
}

// SelectAll 筛选器的"不过滤"哨兵值
const SelectAll = "all"

// DefaultWindowDays 默认回看窗口
const DefaultWindowDays = 90

// DefaultFilterState 默认筛选：全部客户/平台，近 90 天
func DefaultFilterState(now time.Time) FilterState {
	return FilterState{
		ClientName: SelectAll,
		Platform:   SelectAll,
		DateRange: &DateRange{
			Start: now.AddDate(0, 0, -DefaultWindowDays),
			End:   now,
		},
	}
}
