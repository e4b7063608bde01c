package model

import (
	"Pulse/internal/analytics"
	"time"
)

// ContentRecord 每条被追踪内容的最新计数，一条内容一行。
// 计数列允许为 NULL：采样尚未成功时保持缺失，聚合侧按 0 处理。
type ContentRecord struct {
	InputID      int64      `gorm:"primaryKey;column:input_id" json:"input_id"`
	Client       *string    `gorm:"type:varchar(100);index:idx_client" json:"client"`
	Platform     string     `gorm:"type:varchar(30);not null;index:idx_platform" json:"platform"`
	Title        string     `gorm:"type:varchar(255)" json:"title"`
	Link         string     `gorm:"type:varchar(512)" json:"link"`
	Description  string     `gorm:"type:text" json:"description"`
	CreatorName  string     `gorm:"type:varchar(100)" json:"creator_name"`
	Thumbnail    string     `gorm:"type:varchar(512)" json:"thumbnail"`
	ViewCount    *int64     `gorm:"column:view_count" json:"view_count"`
	LikeCount    *int64     `gorm:"column:like_count" json:"like_count"`
	CommentCount *int64     `gorm:"column:comment_count" json:"comment_count"`
	PublishedAt  *time.Time `gorm:"index:idx_published_at" json:"published_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (ContentRecord) TableName() string {
	return "content_records"
}

// ToAnalytics 转换为聚合库的记录表示
func (r *ContentRecord) ToAnalytics() analytics.ContentRecord {
	return analytics.ContentRecord{
		ID:           r.InputID,
		ClientName:   r.Client,
		Platform:     analytics.Platform(r.Platform),
		Title:        r.Title,
		Description:  r.Description,
		CreatorName:  r.CreatorName,
		ThumbnailURL: r.Thumbnail,
		ExternalLink: r.Link,
		PublishedAt:  r.PublishedAt,
		ViewCount:    r.ViewCount,
		LikeCount:    r.LikeCount,
		CommentCount: r.CommentCount,
	}
}
