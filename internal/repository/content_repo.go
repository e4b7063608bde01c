package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentFilter 列表查询的可选条件，零值表示不过滤
type ContentFilter struct {
	Client   string
	Platform string
	Start    *time.Time
	End      *time.Time
}

type ContentRepo interface {
	GetByID(ctx context.Context, inputID int64) (*model.ContentRecord, error)
	List(ctx context.Context, filter ContentFilter) ([]*model.ContentRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*model.ContentRecord, error)
	ListDistinctClients(ctx context.Context) ([]string, error)
	SaveOrUpdate(ctx context.Context, record *model.ContentRecord) error
	DeleteByInputID(ctx context.Context, inputID int64) error
}

type contentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepo {
	return &contentRepoImpl{db: db}
}

func (r *contentRepoImpl) GetByID(ctx context.Context, inputID int64) (*model.ContentRecord, error) {
	record := &model.ContentRecord{}
	result := r.db.WithContext(ctx).
		Where("input_id = ?", inputID).
		First(record)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return record, nil
}

// List 按可选条件查询。日期条件只比较发布时间，发布时间为 NULL 的行在设定日期条件时被排除
func (r *contentRepoImpl) List(ctx context.Context, filter ContentFilter) ([]*model.ContentRecord, error) {
	records := make([]*model.ContentRecord, 0)

	query := r.db.WithContext(ctx).Model(&model.ContentRecord{})
	if filter.Client != "" {
		query = query.Where("client = ?", filter.Client)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.Start != nil {
		query = query.Where("published_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("published_at <= ?", *filter.End)
	}

	result := query.Order("published_at DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// ListRecent 按发布时间取最新的若干条
func (r *contentRepoImpl) ListRecent(ctx context.Context, limit int) ([]*model.ContentRecord, error) {
	records := make([]*model.ContentRecord, 0)
	result := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Order("published_at DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// ListDistinctClients 去重后的客户名列表，空值不参与
func (r *contentRepoImpl) ListDistinctClients(ctx context.Context) ([]string, error) {
	clients := make([]string, 0)
	result := r.db.WithContext(ctx).
		Model(&model.ContentRecord{}).
		Distinct("client").
		Where("client IS NOT NULL AND client <> ''").
		Order("client ASC").
		Pluck("client", &clients)
	if result.Error != nil {
		return nil, result.Error
	}
	return clients, nil
}

// SaveOrUpdate 采用 Upsert 逻辑。同一 input_id 重复采样时刷新元数据与最新计数
func (r *contentRepoImpl) SaveOrUpdate(ctx context.Context, record *model.ContentRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "input_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"client",
			"title",
			"description",
			"creator_name",
			"thumbnail",
			"view_count",
			"like_count",
			"comment_count",
			"published_at",
		}),
	}).Create(record).Error
}

func (r *contentRepoImpl) DeleteByInputID(ctx context.Context, inputID int64) error {
	return r.db.WithContext(ctx).
		Where("input_id = ?", inputID).
		Delete(&model.ContentRecord{}).Error
}
