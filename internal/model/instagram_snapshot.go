package model

import (
	"Pulse/internal/analytics"
	"time"
)

// InstagramSnapshot Instagram 内容计数器的一次快照
type InstagramSnapshot struct {
	ID             int64     `gorm:"primaryKey"`
	ContentID      int64     `gorm:"not null;index:idx_content_sampled,unique;column:content_id"`
	SampledAt      time.Time `gorm:"not null;index:idx_content_sampled,unique;column:sampled_at"`
	VideoViewCount int64     `gorm:"not null;default:0;column:videoViewCount"`
	LikeCount      int64     `gorm:"not null;default:0;column:likeCount"`
	CommentCount   int64     `gorm:"not null;default:0;column:commentCount"`
	CreatedAt      time.Time
}

func (InstagramSnapshot) TableName() string {
	return "instagram_snapshots"
}

func (s *InstagramSnapshot) ToSample() analytics.Sample {
	return analytics.Sample{
		ContentID: s.ContentID,
		SampledAt: s.SampledAt,
		Counters: map[string]int64{
			"videoViewCount": s.VideoViewCount,
			"likeCount":      s.LikeCount,
			"commentCount":   s.CommentCount,
		},
	}
}
