package analytics

import (
	"strings"
)

// Platform 内容来源平台标签，开放集合
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
)

// Metric 逻辑指标名
type Metric string

const (
	MetricViews    Metric = "views"
	MetricLikes    Metric = "likes"
	MetricComments Metric = "comments"
)

// counterFields (platform, metric) -> 各平台快照表中的物理字段名。
// 新增平台只需要在这里补一行，所有消费方都通过 ResolveCounterField 取字段。
var counterFields = map[Platform]map[Metric]string{
	PlatformYouTube: {
		MetricViews:    "viewCount",
		MetricLikes:    "likeCount",
		MetricComments: "commentCount",
	},
	PlatformInstagram: {
		MetricViews:    "videoViewCount",
		MetricLikes:    "likeCount",
		MetricComments: "commentCount",
	},
	PlatformTikTok: {
		MetricViews:    "video_view_count",
		MetricLikes:    "video_like_count",
		MetricComments: "video_comment_count",
	},
}

// NormalizePlatform 大小写不敏感地解析平台标签
func NormalizePlatform(raw string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "youtube":
		return PlatformYouTube, nil
	case "instagram":
		return PlatformInstagram, nil
	case "tiktok":
		return PlatformTikTok, nil
	default:
		return "", ErrPlatformUnsupported
	}
}

// ResolveCounterField 解析指标在该平台快照表中的物理字段名
func ResolveCounterField(platform Platform, metric Metric) (string, error) {
	fields, ok := counterFields[platform]
	if !ok {
		return "", ErrPlatformUnsupported
	}
	field, ok := fields[metric]
	if !ok {
		return "", ErrMetricUnsupported
	}
	return field, nil
}

// KnownPlatforms 返回当前支持的平台列表
func KnownPlatforms() []Platform {
	return []Platform{PlatformYouTube, PlatformInstagram, PlatformTikTok}
}
