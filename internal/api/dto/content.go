package dto

import "time"

// ContentDTO 一条被追踪内容及其最新计数
type ContentDTO struct {
	ID           int64      `json:"id"`
	Client       *string    `json:"client"`
	Platform     string     `json:"platform"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	CreatorName  string     `json:"creator_name"`
	ThumbnailURL string     `json:"thumbnail_url"`
	ExternalLink string     `json:"external_link"`
	PublishedAt  *time.Time `json:"published_at"`
	Views        *int64     `json:"views"`
	Likes        *int64     `json:"likes"`
	Comments     *int64     `json:"comments"`
}

// ContentQueryDTO 列表查询条件，全部可选
type ContentQueryDTO struct {
	Client    string `form:"client"`
	Platform  string `form:"platform"`
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
	SortBy    string `form:"sort_by"`
	SortDir   string `form:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// TopQueryDTO 排行查询条件
type TopQueryDTO struct {
	ContentQueryDTO
	Metric string `form:"metric" validate:"omitempty,oneof=views likes comments"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=50"`
}
