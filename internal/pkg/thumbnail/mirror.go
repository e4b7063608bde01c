package thumbnail

import (
	"Pulse/internal/analytics"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/minio"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Mirror 把平台 CDN 上的缩略图镜像进对象存储，返回对象名。
// Instagram 与 TikTok 的 CDN 地址带签名且很快过期，前端无法直接引用，
// 采样时落一份副本，宽度超限的先等比缩到 consts.ThumbnailMaxWidth。
type Mirror struct {
	client *resty.Client
}

func NewMirror() *Mirror {
	return &Mirror{
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(500 * time.Millisecond),
	}
}

// Fetch 下载、缩放并上传缩略图，返回存储的对象名
func (s *Mirror) Fetch(ctx context.Context, platform analytics.Platform, contentID string, rawURL string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "thumbnail download failed")
	}
	if resp.IsError() {
		return "", errors.Errorf("thumbnail download status %d", resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return "", errors.Errorf("unexpected thumbnail content type %s", contentType)
	}

	img, format, err := image.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", errors.Wrap(err, "thumbnail decode failed")
	}

	if img.Bounds().Dx() > consts.ThumbnailMaxWidth {
		img = imaging.Resize(img, consts.ThumbnailMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	encodeFormat := imaging.JPEG
	ext := "jpg"
	if format == "png" {
		encodeFormat = imaging.PNG
		ext = "png"
	}
	if err = imaging.Encode(&buf, img, encodeFormat); err != nil {
		return "", errors.Wrap(err, "thumbnail encode failed")
	}

	objectName := fmt.Sprintf("%s/%s.%s", platform, contentID, ext)
	uploadType := "image/jpeg"
	if ext == "png" {
		uploadType = "image/png"
	}

	return minio.UploadThumbnail(ctx, objectName, &buf, int64(buf.Len()), uploadType)
}
