package service

import (
	"Pulse/internal/analytics"
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserExist          = errors.New("用户已存在")
	ErrPasswordIncorrect  = errors.New("密码错误")
	ErrOAuthProvider      = errors.New("不支持的登录方式")
	ErrOAuthExchange      = errors.New("第三方登录失败")
	ErrInputNotFound      = errors.New("追踪条目不存在")
	ErrContentNotFound    = errors.New("内容不存在")
	ErrDateRangeInvalid   = errors.New("日期范围错误")
	ErrSortKeyInvalid     = errors.New("排序字段错误")
	ErrConnectorUpstream  = errors.New("数据源异常，请稍后重试")
	UnauthorizedError     = errors.New("权限不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserExist:         BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrOAuthProvider:     BadRequest,
	ErrOAuthExchange:     Unauthorized,
	ErrInputNotFound:     NotFound,
	ErrContentNotFound:   NotFound,
	ErrDateRangeInvalid:  BadRequest,
	ErrSortKeyInvalid:    BadRequest,
	ErrConnectorUpstream: BadGateway,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,

	analytics.ErrPlatformUnsupported: BadRequest,
	analytics.ErrMetricUnsupported:   BadRequest,
}
