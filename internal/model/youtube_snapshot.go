package model

import (
	"Pulse/internal/analytics"
	"time"
)

// YouTubeSnapshot YouTube 内容计数器的一次快照。
// 计数列名保持该平台来源表的历史命名，见 analytics 包的字段映射表。
type YouTubeSnapshot struct {
	ID           int64     `gorm:"primaryKey"`
	ContentID    int64     `gorm:"not null;index:idx_content_sampled,unique;column:content_id"`
	SampledAt    time.Time `gorm:"not null;index:idx_content_sampled,unique;column:sampled_at"`
	ViewCount    int64     `gorm:"not null;default:0;column:viewCount"`
	LikeCount    int64     `gorm:"not null;default:0;column:likeCount"`
	CommentCount int64     `gorm:"not null;default:0;column:commentCount"`
	CreatedAt    time.Time
}

func (YouTubeSnapshot) TableName() string {
	return "youtube_snapshots"
}

func (s *YouTubeSnapshot) ToSample() analytics.Sample {
	return analytics.Sample{
		ContentID: s.ContentID,
		SampledAt: s.SampledAt,
		Counters: map[string]int64{
			"viewCount":    s.ViewCount,
			"likeCount":    s.LikeCount,
			"commentCount": s.CommentCount,
		},
	}
}
