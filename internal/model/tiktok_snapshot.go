package model

import (
	"Pulse/internal/analytics"
	"time"
)

// TikTokSnapshot TikTok 内容计数器的一次快照
type TikTokSnapshot struct {
	ID                int64     `gorm:"primaryKey"`
	ContentID         int64     `gorm:"not null;index:idx_content_sampled,unique;column:content_id"`
	SampledAt         time.Time `gorm:"not null;index:idx_content_sampled,unique;column:sampled_at"`
	VideoViewCount    int64     `gorm:"not null;default:0;column:video_view_count"`
	VideoLikeCount    int64     `gorm:"not null;default:0;column:video_like_count"`
	VideoCommentCount int64     `gorm:"not null;default:0;column:video_comment_count"`
	CreatedAt         time.Time
}

func (TikTokSnapshot) TableName() string {
	return "tiktok_snapshots"
}

func (s *TikTokSnapshot) ToSample() analytics.Sample {
	return analytics.Sample{
		ContentID: s.ContentID,
		SampledAt: s.SampledAt,
		Counters: map[string]int64{
			"video_view_count":    s.VideoViewCount,
			"video_like_count":    s.VideoLikeCount,
			"video_comment_count": s.VideoCommentCount,
		},
	}
}
