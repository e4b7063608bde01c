package repository

import (
	"Pulse/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepo interface {
	GetOrCreateByName(ctx context.Context, name string) (*model.Role, error)
}

type roleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &roleRepoImpl{db: db}
}

// GetOrCreateByName 角色按名字幂等创建，首次 OAuth 登录时补 VIEWER
func (r *roleRepoImpl) GetOrCreateByName(ctx context.Context, name string) (*model.Role, error) {
	role := &model.Role{Name: name}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(role).Error
	if err != nil {
		return nil, err
	}

	if role.ID == 0 {
		if err = r.db.WithContext(ctx).Where("name = ?", name).First(role).Error; err != nil {
			return nil, err
		}
	}

	return role, nil
}
