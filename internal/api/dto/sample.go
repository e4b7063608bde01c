package dto

import "time"

// SampleDTO 一次采样点，三项计数已按平台字段名归一
type SampleDTO struct {
	SampledAt time.Time `json:"sampled_at"`
	Views     int64     `json:"views"`
	Likes     int64     `json:"likes"`
	Comments  int64     `json:"comments"`
}

// SeriesDTO 单条内容的采样序列，顺序随查询条件
type SeriesDTO struct {
	ContentID string       `json:"content_id"`
	Platform  string       `json:"platform"`
	Samples   []*SampleDTO `json:"samples"`
}

// SeriesQueryDTO 采样序列查询条件。limit 缺省取 30，asc 缺省为升序
type SeriesQueryDTO struct {
	Limit int   `form:"limit" validate:"omitempty,min=1,max=365"`
	Asc   *bool `form:"asc"`
}

// Ascending 未显式传 asc 时按升序处理
func (q *SeriesQueryDTO) Ascending() bool {
	return q.Asc == nil || *q.Asc
}

// GrowthQueryDTO 增长查询条件
type GrowthQueryDTO struct {
	Metric    string `form:"metric" validate:"omitempty,oneof=views likes comments"`
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// GrowthDTO 窗口内增长。基线为全序列首个采样点。
type GrowthDTO struct {
	Metric     string  `json:"metric"`
	Percentage float64 `json:"percentage"`
	Absolute   int64   `json:"absolute"`
}
