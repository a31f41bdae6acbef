package common

import (
	"oracle-payload-sol/internal/logic/domain"
	"time"
)

// Context 是 payload 构造时可用的外部依赖，只读
type Context struct {
	Now func() time.Time // 仅 timestamp 类 payload 使用
}

func NewContext(now func() time.Time) *Context {
	if now == nil {
		now = time.Now
	}
	return &Context{Now: now}
}

// BuildFunc 根据输入构造完整 Response
type BuildFunc func(ctx *Context, in *domain.Input) (*domain.Response, error)

// Handler 描述一个已注册的 payload
type Handler struct {
	Required []string // 必填输入字段，在任何推导之前校验
	Build    BuildFunc
}
