package dto

// PlatformBreakdownDTO 单平台聚合
type PlatformBreakdownDTO struct {
	Platform            string  `json:"platform"`
	PostCount           int     `json:"postCount"`
	TotalViews          int64   `json:"totalViews"`
	TotalLikes          int64   `json:"totalLikes"`
	TotalComments       int64   `json:"totalComments"`
	AverageViewsPerPost float64 `json:"averageViewsPerPost"`
	EngagementRate      float64 `json:"engagementRate"`
}

// DashboardSummaryDTO 总览聚合与分平台拆分
type DashboardSummaryDTO struct {
	TotalViews          int64                   `json:"totalViews"`
	TotalLikes          int64                   `json:"totalLikes"`
	TotalComments       int64                   `json:"totalComments"`
	AverageViewsPerPost float64                 `json:"averageViewsPerPost"`
	EngagementRate      float64                 `json:"engagementRate"`
	PostCount           int                     `json:"postCount"`
	Platforms           []*PlatformBreakdownDTO `json:"platforms"`
}
