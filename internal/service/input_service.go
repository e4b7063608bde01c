package service

import (
	"Pulse/internal/analytics"
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/connector"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type InputService interface {
	ListInputs(ctx context.Context) ([]*dto.TrackedInputDTO, error)
	CreateInput(ctx context.Context, createDTO *dto.CreateInputDTO) (*dto.TrackedInputDTO, error)
	UpdateInput(ctx context.Context, id int64, updateDTO *dto.UpdateInputDTO) (*dto.TrackedInputDTO, error)
	DeleteInput(ctx context.Context, id int64) error
	RefreshInput(ctx context.Context, id int64) error
}

// Sampler 对单条追踪种子立即采样一次
type Sampler interface {
	SampleInput(ctx context.Context, input *model.TrackedInput) error
}

type InputServiceImpl struct {
	inputRepo repository.InputRepo
	sampler   Sampler
}

func NewInputService(inputRepo repository.InputRepo, sampler Sampler) InputService {
	return &InputServiceImpl{
		inputRepo: inputRepo,
		sampler:   sampler,
	}
}

func (s *InputServiceImpl) ListInputs(ctx context.Context) ([]*dto.TrackedInputDTO, error) {
	inputs, err := s.inputRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TrackedInputDTO, 0, len(inputs))
	for _, input := range inputs {
		inputDTO := &dto.TrackedInputDTO{}
		if err = copier.Copy(inputDTO, input); err != nil {
			return nil, err
		}
		result = append(result, inputDTO)
	}
	return result, nil
}

func (s *InputServiceImpl) CreateInput(ctx context.Context, createDTO *dto.CreateInputDTO) (*dto.TrackedInputDTO, error) {
	platform, err := analytics.NormalizePlatform(createDTO.Platform)
	if err != nil {
		return nil, err
	}

	input := &model.TrackedInput{
		Client:   createDTO.Client,
		Title:    createDTO.Title,
		Link:     createDTO.Link,
		Platform: string(platform),
	}
	if err = s.inputRepo.Create(ctx, input); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)

	inputDTO := &dto.TrackedInputDTO{}
	if err = copier.Copy(inputDTO, input); err != nil {
		return nil, err
	}
	return inputDTO, nil
}

func (s *InputServiceImpl) UpdateInput(ctx context.Context, id int64, updateDTO *dto.UpdateInputDTO) (*dto.TrackedInputDTO, error) {
	input, err := s.inputRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, ErrInputNotFound
	}

	if updateDTO.Client != nil {
		input.Client = *updateDTO.Client
	}
	if updateDTO.Title != nil {
		input.Title = *updateDTO.Title
	}
	if updateDTO.Link != nil {
		input.Link = *updateDTO.Link
	}

	if err = s.inputRepo.Update(ctx, input); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)

	inputDTO := &dto.TrackedInputDTO{}
	if err = copier.Copy(inputDTO, input); err != nil {
		return nil, err
	}
	return inputDTO, nil
}

func (s *InputServiceImpl) DeleteInput(ctx context.Context, id int64) error {
	input, err := s.inputRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if input == nil {
		return ErrInputNotFound
	}

	if err = s.inputRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCaches(ctx)
	return nil
}

// RefreshInput 对一条种子立即重采。数据源失败映射为网关错误，存储错误原样上抛
func (s *InputServiceImpl) RefreshInput(ctx context.Context, id int64) error {
	input, err := s.inputRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if input == nil {
		return ErrInputNotFound
	}

	if err = s.sampler.SampleInput(ctx, input); err != nil {
		if errors.Is(err, connector.ErrUpstream) {
			log.WarnContext(ctx, "refresh input upstream error", "id", id, "err", err)
			return ErrConnectorUpstream
		}
		return err
	}

	s.invalidateCaches(ctx)
	return nil
}

// invalidateCaches 种子变化影响列表、聚合与序列，相关缓存整组失效
func (s *InputServiceImpl) invalidateCaches(ctx context.Context) {
	_ = redis.DeleteByPrefix(ctx, consts.DashboardSummaryKey)
	_ = redis.DeleteByPrefix(ctx, consts.ContentTopKey)
	_ = redis.DeleteByPrefix(ctx, consts.SampleSeriesKey)
	_ = redis.DeleteKey(ctx, consts.DistinctClientsKey)
}
