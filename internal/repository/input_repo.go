package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type InputRepo interface {
	GetByID(ctx context.Context, id int64) (*model.TrackedInput, error)
	ListAll(ctx context.Context) ([]*model.TrackedInput, error)
	Create(ctx context.Context, input *model.TrackedInput) error
	Update(ctx context.Context, input *model.TrackedInput) error
	Delete(ctx context.Context, id int64) error
}

type inputRepoImpl struct {
	db *gorm.DB
}

func NewInputRepo(db *gorm.DB) InputRepo {
	return &inputRepoImpl{db: db}
}

func (r *inputRepoImpl) GetByID(ctx context.Context, id int64) (*model.TrackedInput, error) {
	input := &model.TrackedInput{}
	result := r.db.WithContext(ctx).First(input, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return input, nil
}

func (r *inputRepoImpl) ListAll(ctx context.Context) ([]*model.TrackedInput, error) {
	inputs := make([]*model.TrackedInput, 0)
	result := r.db.WithContext(ctx).Order("id ASC").Find(&inputs)
	if result.Error != nil {
		return nil, result.Error
	}
	return inputs, nil
}

func (r *inputRepoImpl) Create(ctx context.Context, input *model.TrackedInput) error {
	return r.db.WithContext(ctx).Create(input).Error
}

func (r *inputRepoImpl) Update(ctx context.Context, input *model.TrackedInput) error {
	result := r.db.WithContext(ctx).Model(&model.TrackedInput{}).Where("id = ?", input.ID).Updates(input)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete 连同派生的最新计数行一起删除，快照序列保留备查
func (r *inputRepoImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Delete(&model.TrackedInput{}, id); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("input_id = ?", id).Delete(&model.ContentRecord{}); result.Error != nil {
			return result.Error
		}
		return nil
	})
}
