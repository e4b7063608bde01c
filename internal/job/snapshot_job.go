package job

import (
	"Pulse/internal/analytics"
	"Pulse/internal/model"
	"Pulse/internal/pkg/connector"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/logger"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/pkg/thumbnail"
	"Pulse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// 单个平台内串行拉取，平台之间并行，避免对同一数据源打满
const platformConcurrency = 3

// SnapshotJob 定时遍历追踪种子，逐条拉取实时计数并落快照。
// 单条失败只记录，不中断整轮采样。
type SnapshotJob struct {
	inputRepo    repository.InputRepo
	contentRepo  repository.ContentRepo
	snapshotRepo repository.SnapshotRepo
	connectors   connector.Registry
	mirror       *thumbnail.Mirror
}

func NewSnapshotJob(
	inputRepo repository.InputRepo,
	contentRepo repository.ContentRepo,
	snapshotRepo repository.SnapshotRepo,
	connectors connector.Registry,
	mirror *thumbnail.Mirror,
) *SnapshotJob {
	return &SnapshotJob{
		inputRepo:    inputRepo,
		contentRepo:  contentRepo,
		snapshotRepo: snapshotRepo,
		connectors:   connectors,
		mirror:       mirror,
	}
}

func (s *SnapshotJob) Run() {
	traceID := "job-snapshot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	inputs, err := s.inputRepo.ListAll(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list tracked inputs error", "err", err)
		return
	}

	byPlatform := make(map[analytics.Platform][]*model.TrackedInput)
	for _, input := range inputs {
		platform, normErr := analytics.NormalizePlatform(input.Platform)
		if normErr != nil {
			log.WarnContext(ctx, "skip input with unknown platform", "id", input.ID, "platform", input.Platform)
			continue
		}
		byPlatform[platform] = append(byPlatform[platform], input)
	}

	sampledAt := time.Now()
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(platformConcurrency)

	total := 0
	for platform, group := range byPlatform {
		total += len(group)
		g.Go(func() error {
			s.samplePlatform(gCtx, platform, group, sampledAt)
			return nil
		})
	}
	_ = g.Wait()

	s.invalidateCaches(ctx)

	log.InfoContext(ctx, "snapshot round finished", "input_count", total)
}

func (s *SnapshotJob) samplePlatform(ctx context.Context, platform analytics.Platform, inputs []*model.TrackedInput, sampledAt time.Time) {
	conn, ok := s.connectors[platform]
	if !ok {
		log.WarnContext(ctx, "no connector for platform", "platform", platform)
		return
	}

	for _, input := range inputs {
		if err := s.sampleOne(ctx, conn, platform, input, sampledAt); err != nil {
			log.ErrorContext(ctx, "sample input error", "id", input.ID, "platform", platform, "err", err)
		}
	}
}

// SampleInput 对单条种子立即采样一次，管理端手动刷新用
func (s *SnapshotJob) SampleInput(ctx context.Context, input *model.TrackedInput) error {
	platform, err := analytics.NormalizePlatform(input.Platform)
	if err != nil {
		return err
	}
	conn, ok := s.connectors[platform]
	if !ok {
		return analytics.ErrPlatformUnsupported
	}
	return s.sampleOne(ctx, conn, platform, input, time.Now())
}

func (s *SnapshotJob) sampleOne(ctx context.Context, conn connector.Connector, platform analytics.Platform, input *model.TrackedInput, sampledAt time.Time) error {
	counters, err := conn.FetchCounters(ctx, input.Link)
	if err != nil {
		return fmt.Errorf("fetch counters: %w: %v", connector.ErrUpstream, err)
	}

	sample := analytics.Sample{
		ContentID: input.ID,
		SampledAt: sampledAt,
		Counters:  s.toCounterMap(platform, counters),
	}
	if err = s.snapshotRepo.SaveOrUpdate(ctx, platform, sample); err != nil {
		return err
	}

	record := &model.ContentRecord{
		InputID:      input.ID,
		Platform:     string(platform),
		Title:        counters.Title,
		Link:         input.Link,
		Description:  counters.Description,
		CreatorName:  counters.CreatorName,
		Thumbnail:    s.resolveThumbnail(ctx, platform, input.ID, counters.ThumbnailURL),
		ViewCount:    &counters.Views,
		LikeCount:    &counters.Likes,
		CommentCount: &counters.Comments,
		PublishedAt:  counters.PublishedAt,
	}
	if input.Client != "" {
		record.Client = &input.Client
	}
	if input.Title != "" {
		record.Title = input.Title
	}

	return s.contentRepo.SaveOrUpdate(ctx, record)
}

func (s *SnapshotJob) toCounterMap(platform analytics.Platform, counters *connector.Counters) map[string]int64 {
	result := make(map[string]int64, 3)
	if name, err := analytics.ResolveCounterField(platform, analytics.MetricViews); err == nil {
		result[name] = counters.Views
	}
	if name, err := analytics.ResolveCounterField(platform, analytics.MetricLikes); err == nil {
		result[name] = counters.Likes
	}
	if name, err := analytics.ResolveCounterField(platform, analytics.MetricComments); err == nil {
		result[name] = counters.Comments
	}
	return result
}

// resolveThumbnail YouTube 的 CDN 地址稳定，直接存；
// 其余平台的地址带签名会过期，镜像进对象存储后存对象名
func (s *SnapshotJob) resolveThumbnail(ctx context.Context, platform analytics.Platform, inputID int64, rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if platform == analytics.PlatformYouTube {
		return rawURL
	}

	objectName, err := s.mirror.Fetch(ctx, platform, fmt.Sprintf("%d", inputID), rawURL)
	if err != nil {
		log.WarnContext(ctx, "mirror thumbnail error", "id", inputID, "err", err)
		// 镜像失败时保底存原始地址，前端至少在签名过期前可用
		if strings.HasPrefix(rawURL, "http") {
			return rawURL
		}
		return ""
	}
	return objectName
}

func (s *SnapshotJob) invalidateCaches(ctx context.Context) {
	_ = redis.DeleteByPrefix(ctx, consts.DashboardSummaryKey)
	_ = redis.DeleteByPrefix(ctx, consts.ContentTopKey)
	_ = redis.DeleteByPrefix(ctx, consts.SampleSeriesKey)
	_ = redis.DeleteKey(ctx, consts.DistinctClientsKey)
}
