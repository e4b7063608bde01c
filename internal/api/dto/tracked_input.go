package dto

import "time"

// TrackedInputDTO 追踪种子行
type TrackedInputDTO struct {
	ID        int64      `json:"id"`
	Client    string     `json:"client"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Platform  string     `json:"platform"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateInputDTO struct {
	Client   string `json:"client" validate:"omitempty,max=100"`
	Title    string `json:"title" validate:"omitempty,max=255"`
	Link     string `json:"link" validate:"required,url"`
	Platform string `json:"platform" validate:"required"`
}

// UpdateInputDTO 可更新字段均为可选，nil 表示不变
type UpdateInputDTO struct {
	Client *string `json:"client" validate:"omitempty,max=100"`
	Title  *string `json:"title" validate:"omitempty,max=255"`
	Link   *string `json:"link" validate:"omitempty,url"`
}
