package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByOAuth(ctx context.Context, provider string, subject string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User, roles []*model.UserRole) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := r.db.WithContext(ctx).
		Preload("UserRoles").
		Preload("UserRoles.Role").
		First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (r *userRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := r.db.WithContext(ctx).
		Preload("UserRoles").
		Preload("UserRoles.Role").
		Where("email = ?", email).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (r *userRepoImpl) GetUserByOAuth(ctx context.Context, provider string, subject string) (*model.User, error) {
	user := &model.User{}
	result := r.db.WithContext(ctx).
		Preload("UserRoles").
		Preload("UserRoles.Role").
		Where("oauth_provider = ? AND oauth_subject = ?", provider, subject).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (r *userRepoImpl) CreateUser(ctx context.Context, user *model.User, roles []*model.UserRole) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(user); result.Error != nil {
			return result.Error
		}

		for _, role := range roles {
			role.UserID = user.ID
		}
		if result := tx.Create(roles); result.Error != nil {
			return result.Error
		}

		return nil
	})
}
