package kafka

import (
	"Pulse/internal/api/config"
	"Pulse/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	snapshotConsumer sarama.ConsumerGroup
	snapshotHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	snapshotRepo repository.SnapshotRepo,
	contentRepo repository.ContentRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	snapshotConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaSnapshotConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	snapshotHandler := NewSnapshotHandler(snapshotRepo, contentRepo)

	return &ConsumerManager{
		snapshotConsumer: snapshotConsumer,
		snapshotHandler:  snapshotHandler,
	}, nil
}

// Start 启动所有消费者并阻塞到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaSnapshotConsumer.Topic
		log.Info("Snapshot consumer started", "topic", topic)
		for {
			if err := m.snapshotConsumer.Consume(ctx, []string{topic}, m.snapshotHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.snapshotConsumer.Close(); err != nil {
		log.Error("Failed to close snapshot consumer", "err", err)
	}

	return nil
}
