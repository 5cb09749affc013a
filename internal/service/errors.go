package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrPlatformInvalid  = errors.New("不支持的平台")
	ErrSortInvalid      = errors.New("不支持的排序方式")
	ErrDateOrderInvalid = errors.New("不支持的日期顺序")
	ErrSourceKind       = errors.New("不支持的数据源类型")
	ErrAuditNotFound    = errors.New("暂无校验记录")
	ErrAuditDisabled    = errors.New("未配置 Redis，校验记录不可用")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrPlatformInvalid:  BadRequest,
	ErrSortInvalid:      BadRequest,
	ErrDateOrderInvalid: BadRequest,
	ErrSourceKind:       InternalServerError,
	ErrAuditNotFound:    NotFound,
	ErrAuditDisabled:    NotFound,
	UnExpectedError:     InternalServerError,
}
