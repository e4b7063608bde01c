package model

import (
	"time"
)

// TrackedInput 运营在后台维护的追踪种子表，决定哪些内容会被采样
type TrackedInput struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Client    string    `gorm:"type:varchar(100);index:idx_client" json:"client"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Link      string    `gorm:"type:varchar(512);not null" json:"link"`
	Platform  string    `gorm:"type:varchar(30);not null;index:idx_platform" json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TrackedInput) TableName() string {
	return "tracked_inputs"
}
