package kafka

import (
	"errors"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// SnapshotMessage 外部采集端推送的一次计数快照。
// counters 的键是平台各自的物理字段名，不在消息侧归一。
type SnapshotMessage struct {
	Platform  string           `json:"platform"`
	ContentID int64            `json:"content_id"`
	SampledAt time.Time        `json:"sampled_at"`
	Counters  map[string]int64 `json:"counters"`
}

// ToSnapshotMessage 将 kafka 消息转换为快照结构体
func ToSnapshotMessage(msg *sarama.ConsumerMessage) (*SnapshotMessage, error) {
	var snapshotMsg SnapshotMessage
	if err := json.Unmarshal(msg.Value, &snapshotMsg); err != nil {
		log.Error("unmarshal snapshot message error", "err", err)
		return nil, err
	}

	if snapshotMsg.ContentID == 0 {
		return nil, errors.New("content_id is empty")
	}
	if snapshotMsg.SampledAt.IsZero() {
		return nil, errors.New("sampled_at is empty")
	}
	if len(snapshotMsg.Counters) == 0 {
		return nil, errors.New("counters is empty")
	}

	return &snapshotMsg, nil
}
