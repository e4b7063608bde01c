package kafka

import (
	"Pulse/internal/analytics"
	"Pulse/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// SnapshotHandler 消费外部采集端推送的计数快照，
// 与定时任务的主动采样互补，两边写同一套快照表，幂等
type SnapshotHandler struct {
	snapshotRepo repository.SnapshotRepo
	contentRepo  repository.ContentRepo
}

func NewSnapshotHandler(snapshotRepo repository.SnapshotRepo, contentRepo repository.ContentRepo) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotRepo: snapshotRepo,
		contentRepo:  contentRepo,
	}
}

func (s *SnapshotHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("snapshot consumer setup")
	return nil
}

func (s *SnapshotHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("snapshot consumer cleanup")
	return nil
}

func (s *SnapshotHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-snapshot consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-snapshot process batch error", "err", err)
		return err
	}
	return nil
}

func (s *SnapshotHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	snapshotMsg, err := ToSnapshotMessage(msg)
	if err != nil {
		// 坏消息没有重试价值，记录后丢弃
		log.Warn("drop malformed snapshot message", "err", err)
		return nil
	}

	platform, err := analytics.NormalizePlatform(snapshotMsg.Platform)
	if err != nil {
		log.Warn("drop snapshot for unknown platform", "platform", snapshotMsg.Platform)
		return nil
	}

	sample := analytics.Sample{
		ContentID: snapshotMsg.ContentID,
		SampledAt: snapshotMsg.SampledAt,
		Counters:  snapshotMsg.Counters,
	}
	if err = s.snapshotRepo.SaveOrUpdate(ctx, platform, sample); err != nil {
		return err
	}

	return s.refreshLatestCounters(ctx, platform, sample)
}

// refreshLatestCounters 同步最新计数到内容表，列表与聚合读这张表
func (s *SnapshotHandler) refreshLatestCounters(ctx context.Context, platform analytics.Platform, sample analytics.Sample) error {
	record, err := s.contentRepo.GetByID(ctx, sample.ContentID)
	if err != nil {
		return err
	}
	if record == nil {
		// 种子尚未登记的内容只留快照，不建内容行
		return nil
	}

	counter := func(metric analytics.Metric) *int64 {
		name, resolveErr := analytics.ResolveCounterField(platform, metric)
		if resolveErr != nil {
			return nil
		}
		value, ok := sample.Counters[name]
		if !ok {
			return nil
		}
		return &value
	}

	if views := counter(analytics.MetricViews); views != nil {
		record.ViewCount = views
	}
	if likes := counter(analytics.MetricLikes); likes != nil {
		record.LikeCount = likes
	}
	if comments := counter(analytics.MetricComments); comments != nil {
		record.CommentCount = comments
	}

	return s.contentRepo.SaveOrUpdate(ctx, record)
}
