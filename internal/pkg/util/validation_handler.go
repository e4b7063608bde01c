package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 结构体级校验。返回原始校验错误，由响应层统一映射为参数错误
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
