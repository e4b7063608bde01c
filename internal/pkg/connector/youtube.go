package connector

import (
	"Pulse/internal/analytics"
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const youtubeVideosAPI = "https://www.googleapis.com/youtube/v3/videos"

type YouTubeConnector struct {
	client *resty.Client
	apiKey string
}

func NewYouTubeConnector(client *resty.Client, apiKey string) *YouTubeConnector {
	return &YouTubeConnector{client: client, apiKey: apiKey}
}

func (s *YouTubeConnector) Platform() analytics.Platform {
	return analytics.PlatformYouTube
}

func (s *YouTubeConnector) FetchCounters(ctx context.Context, link string) (*Counters, error) {
	videoID, err := extractYouTubeID(link)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "statistics,snippet",
			"id":   videoID,
			"key":  s.apiKey,
		}).
		Get(youtubeVideosAPI)
	if err != nil {
		return nil, errors.Wrap(err, "youtube api request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("youtube api status %d", resp.StatusCode())
	}

	var body struct {
		Items []struct {
			Snippet struct {
				Title        string    `json:"title"`
				Description  string    `json:"description"`
				ChannelTitle string    `json:"channelTitle"`
				PublishedAt  time.Time `json:"publishedAt"`
				Thumbnails   struct {
					High struct {
						URL string `json:"url"`
					} `json:"high"`
				} `json:"thumbnails"`
			} `json:"snippet"`
			Statistics struct {
				ViewCount    string `json:"viewCount"`
				LikeCount    string `json:"likeCount"`
				CommentCount string `json:"commentCount"`
			} `json:"statistics"`
		} `json:"items"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, errors.Wrap(err, "youtube api response decode failed")
	}
	if len(body.Items) == 0 {
		return nil, errors.Errorf("youtube video %s not found", videoID)
	}

	item := body.Items[0]
	publishedAt := item.Snippet.PublishedAt

	return &Counters{
		Views:        parseCount(item.Statistics.ViewCount),
		Likes:        parseCount(item.Statistics.LikeCount),
		Comments:     parseCount(item.Statistics.CommentCount),
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		CreatorName:  item.Snippet.ChannelTitle,
		ThumbnailURL: item.Snippet.Thumbnails.High.URL,
		PublishedAt:  &publishedAt,
	}, nil
}

// extractYouTubeID 支持 watch?v=、youtu.be/ 与 shorts/ 三种外链形态
func extractYouTubeID(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", errors.Wrap(err, "invalid youtube link")
	}

	if v := u.Query().Get("v"); v != "" {
		return v, nil
	}

	path := strings.Trim(u.Path, "/")
	if strings.HasPrefix(path, "shorts/") {
		return strings.TrimPrefix(path, "shorts/"), nil
	}
	if u.Host == "youtu.be" && path != "" {
		return path, nil
	}

	return "", errors.Errorf("cannot extract video id from %s", link)
}

// parseCount API 把计数作为字符串返回；缺失字段按 0
func parseCount(raw string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
