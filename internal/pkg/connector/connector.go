package connector

import (
	"Pulse/internal/analytics"
	"context"
	"errors"
	"time"
)

// ErrUpstream 数据源侧失败，调用方据此与本地存储错误区分
var ErrUpstream = errors.New("platform upstream error")

// Counters 连接器拉取到的某条内容的实时元数据与计数
type Counters struct {
	Views        int64
	Likes        int64
	Comments     int64
	Title        string
	Description  string
	CreatorName  string
	ThumbnailURL string
	PublishedAt  *time.Time
}

// Connector 各平台计数拉取器。失败属于数据源错误，调用方记录后继续，不致命。
type Connector interface {
	Platform() analytics.Platform
	// FetchCounters 根据追踪种子里的外链拉取实时计数
	FetchCounters(ctx context.Context, link string) (*Counters, error)
}

// Registry 平台 -> 连接器
type Registry map[analytics.Platform]Connector

// NewRegistry 构造全部平台连接器
func NewRegistry(cfg Config) Registry {
	client := newHTTPClient(cfg)
	return Registry{
		analytics.PlatformYouTube:   NewYouTubeConnector(client, cfg.YouTubeAPIKey),
		analytics.PlatformInstagram: NewInstagramConnector(client, cfg.InstagramToken),
		analytics.PlatformTikTok:    NewTikTokConnector(client, cfg.EnableBrowser),
	}
}

// Config 连接器配置
type Config struct {
	YouTubeAPIKey  string
	InstagramToken string
	UserAgent      string
	EnableBrowser  bool
}
