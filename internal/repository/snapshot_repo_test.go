package repository

import (
	"Pulse/internal/pkg/consts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesOptionsDefaults(t *testing.T) {
	opts := SeriesOptions{}

	assert.Equal(t, consts.SnapshotSeriesLimit, opts.limit())
	assert.Equal(t, "sampled_at ASC", opts.order())
}

func TestSeriesOptionsExplicit(t *testing.T) {
	opts := SeriesOptions{Limit: 5, Descending: true}

	assert.Equal(t, 5, opts.limit())
	assert.Equal(t, "sampled_at DESC", opts.order())

	assert.Equal(t, consts.SnapshotSeriesLimit, SeriesOptions{Limit: -1}.limit())
}
