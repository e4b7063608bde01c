package thumbnail

import (
	"Pulse/internal/analytics"
	"Pulse/internal/pkg/minio"
	"strings"
)

// ResolverFunc 将库里存的原始缩略图值改写为可直接访问的 URL
type ResolverFunc func(raw string) string

// Registry 按平台登记缩略图地址改写规则。
// 部分平台只存对象名，需要改写为对象存储外链；改写规则必须可插拔，
// 新平台注册一条规则即可，不在各消费方硬编码。
type Registry struct {
	resolvers map[analytics.Platform]ResolverFunc
}

// NewRegistry 构造默认规则集：YouTube 直接透传 CDN 地址，
// Instagram 与 TikTok 的缩略图在采样时镜像进了对象存储，存的是对象名。
func NewRegistry() *Registry {
	r := &Registry{resolvers: make(map[analytics.Platform]ResolverFunc)}

	r.Register(analytics.PlatformYouTube, passthrough)
	r.Register(analytics.PlatformInstagram, objectStoreURL)
	r.Register(analytics.PlatformTikTok, objectStoreURL)

	return r
}

// Register 登记或覆盖某平台的改写规则
func (r *Registry) Register(platform analytics.Platform, fn ResolverFunc) {
	r.resolvers[platform] = fn
}

// Resolve 执行改写；未登记的平台原样返回
func (r *Registry) Resolve(platform analytics.Platform, raw string) string {
	if raw == "" {
		return ""
	}
	fn, ok := r.resolvers[platform]
	if !ok {
		return raw
	}
	return fn(raw)
}

func passthrough(raw string) string {
	return raw
}

func objectStoreURL(raw string) string {
	// 历史数据中混有完整 URL，只改写对象名
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return minio.GetPublicURL(raw)
}
