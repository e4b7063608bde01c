package connector

import (
	"Pulse/internal/analytics"
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const instagramGraphAPI = "https://graph.instagram.com"

type InstagramConnector struct {
	client      *resty.Client
	accessToken string
}

func NewInstagramConnector(client *resty.Client, accessToken string) *InstagramConnector {
	return &InstagramConnector{client: client, accessToken: accessToken}
}

func (s *InstagramConnector) Platform() analytics.Platform {
	return analytics.PlatformInstagram
}

func (s *InstagramConnector) FetchCounters(ctx context.Context, link string) (*Counters, error) {
	mediaID, err := extractInstagramID(link)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "caption,username,timestamp,thumbnail_url,media_url,like_count,comments_count",
			"access_token": s.accessToken,
		}).
		Get(instagramGraphAPI + "/" + mediaID)
	if err != nil {
		return nil, errors.Wrap(err, "instagram api request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("instagram api status %d", resp.StatusCode())
	}

	var body struct {
		Caption       string `json:"caption"`
		Username      string `json:"username"`
		Timestamp     string `json:"timestamp"`
		ThumbnailURL  string `json:"thumbnail_url"`
		MediaURL      string `json:"media_url"`
		LikeCount     int64  `json:"like_count"`
		CommentsCount int64  `json:"comments_count"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, errors.Wrap(err, "instagram api response decode failed")
	}

	counters := &Counters{
		Likes:        body.LikeCount,
		Comments:     body.CommentsCount,
		Title:        firstLine(body.Caption),
		Description:  body.Caption,
		CreatorName:  body.Username,
		ThumbnailURL: body.ThumbnailURL,
	}
	if counters.ThumbnailURL == "" {
		counters.ThumbnailURL = body.MediaURL
	}
	if ts, parseErr := time.Parse("2006-01-02T15:04:05-0700", body.Timestamp); parseErr == nil {
		counters.PublishedAt = &ts
	}

	// 播放数走 insights 接口，个别媒体类型不支持时维持 0
	if views, viewErr := s.fetchViews(ctx, mediaID); viewErr == nil {
		counters.Views = views
	}

	return counters, nil
}

func (s *InstagramConnector) fetchViews(ctx context.Context, mediaID string) (int64, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"metric":       "views",
			"access_token": s.accessToken,
		}).
		Get(instagramGraphAPI + "/" + mediaID + "/insights")
	if err != nil {
		return 0, errors.Wrap(err, "instagram insights request failed")
	}
	if resp.IsError() {
		return 0, errors.Errorf("instagram insights status %d", resp.StatusCode())
	}

	var body struct {
		Data []struct {
			Values []struct {
				Value int64 `json:"value"`
			} `json:"values"`
		} `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, errors.Wrap(err, "instagram insights decode failed")
	}
	if len(body.Data) == 0 || len(body.Data[0].Values) == 0 {
		return 0, errors.New("instagram insights empty")
	}

	return body.Data[0].Values[0].Value, nil
}

// extractInstagramID 追踪种子里 Instagram 外链直接带媒体 ID（/media/{id} 或查询参数 id）
func extractInstagramID(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", errors.Wrap(err, "invalid instagram link")
	}

	if id := u.Query().Get("id"); id != "" {
		return id, nil
	}

	path := strings.Trim(u.Path, "/")
	if strings.HasPrefix(path, "media/") {
		return strings.TrimPrefix(path, "media/"), nil
	}
	if path != "" && !strings.Contains(path, "/") {
		return path, nil
	}

	return "", errors.Errorf("cannot extract media id from %s", link)
}

func firstLine(caption string) string {
	if idx := strings.IndexByte(caption, '\n'); idx >= 0 {
		return caption[:idx]
	}
	return caption
}
