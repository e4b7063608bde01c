package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnapshotMessage(t *testing.T) {
	msg := &sarama.ConsumerMessage{
		Value: []byte(`{
			"platform": "YouTube",
			"content_id": 7,
			"sampled_at": "2026-08-01T12:00:00Z",
			"counters": {"viewCount": 100, "likeCount": 5, "commentCount": 2}
		}`),
	}

	snapshotMsg, err := ToSnapshotMessage(msg)
	require.NoError(t, err)

	assert.Equal(t, "YouTube", snapshotMsg.Platform)
	assert.Equal(t, int64(7), snapshotMsg.ContentID)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), snapshotMsg.SampledAt)
	assert.Equal(t, int64(100), snapshotMsg.Counters["viewCount"])
}

func TestToSnapshotMessageRejectsIncomplete(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"missing content_id", `{"platform":"YouTube","sampled_at":"2026-08-01T12:00:00Z","counters":{"viewCount":1}}`},
		{"missing sampled_at", `{"platform":"YouTube","content_id":7,"counters":{"viewCount":1}}`},
		{"empty counters", `{"platform":"YouTube","content_id":7,"sampled_at":"2026-08-01T12:00:00Z","counters":{}}`},
		{"broken json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToSnapshotMessage(&sarama.ConsumerMessage{Value: []byte(tc.value)})
			assert.Error(t, err)
		})
	}
}
