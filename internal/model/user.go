package model

import (
	"time"
)

type User struct {
	ID            uint64  `gorm:"primaryKey"`
	Email         string  `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	Password      *string `gorm:"type:varchar(255)"`
	OAuthProvider *string `gorm:"type:varchar(30);index:idx_oauth,priority:1"`
	OAuthSubject  *string `gorm:"type:varchar(255);index:idx_oauth,priority:2"`
	DisplayName   string  `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
