package service

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/connector"
	"Pulse/internal/repository"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeInputRepo struct {
	repository.InputRepo
	inputs map[int64]*model.TrackedInput
}

func (f *fakeInputRepo) GetByID(_ context.Context, id int64) (*model.TrackedInput, error) {
	return f.inputs[id], nil
}

type fakeSampler struct {
	err    error
	calls  int
	lastID int64
}

func (f *fakeSampler) SampleInput(_ context.Context, input *model.TrackedInput) error {
	f.calls++
	f.lastID = input.ID
	return f.err
}

func TestRefreshInputUpstreamFailureMapsToGatewayError(t *testing.T) {
	sampler := &fakeSampler{
		err: fmt.Errorf("fetch counters: %w: timeout", connector.ErrUpstream),
	}
	svc := NewInputService(&fakeInputRepo{inputs: map[int64]*model.TrackedInput{
		1: {ID: 1, Platform: "YouTube", Link: "https://youtu.be/abc"},
	}}, sampler)

	err := svc.RefreshInput(context.Background(), 1)

	assert.ErrorIs(t, err, ErrConnectorUpstream)
	assert.Equal(t, 1, sampler.calls)
	assert.Equal(t, int64(1), sampler.lastID)
}

func TestRefreshInputUnknownID(t *testing.T) {
	sampler := &fakeSampler{}
	svc := NewInputService(&fakeInputRepo{inputs: map[int64]*model.TrackedInput{}}, sampler)

	err := svc.RefreshInput(context.Background(), 99)

	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Zero(t, sampler.calls)
}

func TestRefreshInputStorageErrorPassesThrough(t *testing.T) {
	storageErr := errors.New("db down")
	sampler := &fakeSampler{err: storageErr}
	svc := NewInputService(&fakeInputRepo{inputs: map[int64]*model.TrackedInput{
		1: {ID: 1, Platform: "YouTube", Link: "https://youtu.be/abc"},
	}}, sampler)

	err := svc.RefreshInput(context.Background(), 1)

	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrConnectorUpstream)
}
