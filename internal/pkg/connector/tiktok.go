package connector

import (
	"Pulse/internal/analytics"
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const tiktokStateScriptID = "__UNIVERSAL_DATA_FOR_REHYDRATION__"

// TikTokConnector 没有可用的公开 API，从视频页内嵌的水合状态里取计数。
// 直接 GET 命中风控时退回无头浏览器渲染一次。
type TikTokConnector struct {
	client        *resty.Client
	browserCtx    context.Context
	enableBrowser bool
}

func NewTikTokConnector(client *resty.Client, enableBrowser bool) *TikTokConnector {
	s := &TikTokConnector{client: client, enableBrowser: enableBrowser}

	if enableBrowser {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("enable-automation", false),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.Flag("blink-settings", "imagesEnabled=false"),
			chromedp.UserAgent(defaultUserAgent),
		)

		allocCtx, _ := chromedp.NewExecAllocator(context.Background(), opts...)
		browserCtx, _ := chromedp.NewContext(allocCtx)
		s.browserCtx = browserCtx
	}

	return s
}

func (s *TikTokConnector) Platform() analytics.Platform {
	return analytics.PlatformTikTok
}

func (s *TikTokConnector) FetchCounters(ctx context.Context, link string) (*Counters, error) {
	html, err := s.fetchHTML(ctx, link)
	if err != nil {
		return nil, err
	}

	return parseTikTokPage(html)
}

func (s *TikTokConnector) fetchHTML(ctx context.Context, link string) (string, error) {
	var html string

	resp, err := s.client.R().SetContext(ctx).Get(link)
	if err == nil && !resp.IsError() {
		html = resp.String()
	}

	// 风控页没有水合脚本且体量很小，此时换浏览器渲染
	if s.enableBrowser && (len(html) < 4000 || !strings.Contains(html, tiktokStateScriptID)) {
		tabCtx, cancel := chromedp.NewContext(s.browserCtx)
		defer cancel()

		tabCtx, timeoutCancel := context.WithTimeout(tabCtx, 20*time.Second)
		defer timeoutCancel()

		var renderHTML string
		runErr := chromedp.Run(tabCtx,
			chromedp.Navigate(link),
			chromedp.WaitReady(`body`),
			chromedp.OuterHTML("html", &renderHTML),
		)
		if runErr == nil {
			html = renderHTML
		}
	}

	if html == "" {
		return "", errors.Errorf("tiktok page %s unreachable", link)
	}

	return html, nil
}

func parseTikTokPage(html string) (*Counters, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "tiktok page parse failed")
	}

	raw := doc.Find("script#" + tiktokStateScriptID).Text()
	if raw == "" {
		return nil, errors.New("tiktok hydration state missing")
	}

	var state struct {
		DefaultScope struct {
			VideoDetail struct {
				ItemInfo struct {
					ItemStruct struct {
						Desc       string `json:"desc"`
						CreateTime int64  `json:"createTime"`
						Author     struct {
							Nickname string `json:"nickname"`
						} `json:"author"`
						Video struct {
							Cover string `json:"cover"`
						} `json:"video"`
						Stats struct {
							PlayCount    int64 `json:"playCount"`
							DiggCount    int64 `json:"diggCount"`
							CommentCount int64 `json:"commentCount"`
						} `json:"stats"`
					} `json:"itemStruct"`
				} `json:"itemInfo"`
			} `json:"webapp.video-detail"`
		} `json:"__DEFAULT_SCOPE__"`
	}
	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, errors.Wrap(err, "tiktok hydration state decode failed")
	}

	item := state.DefaultScope.VideoDetail.ItemInfo.ItemStruct
	if item.CreateTime == 0 && item.Stats.PlayCount == 0 && item.Desc == "" {
		return nil, errors.New("tiktok video detail empty")
	}

	counters := &Counters{
		Views:        item.Stats.PlayCount,
		Likes:        item.Stats.DiggCount,
		Comments:     item.Stats.CommentCount,
		Title:        firstLine(item.Desc),
		Description:  item.Desc,
		CreatorName:  item.Author.Nickname,
		ThumbnailURL: item.Video.Cover,
	}
	if item.CreateTime > 0 {
		ts := time.Unix(item.CreateTime, 0).UTC()
		counters.PublishedAt = &ts
	}

	return counters, nil
}
