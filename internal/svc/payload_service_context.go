package svc

import (
	"oracle-payload-sol/internal/config"
	"oracle-payload-sol/internal/input"
	"oracle-payload-sol/internal/logic/domain"
	"oracle-payload-sol/internal/logic/payload"
	"oracle-payload-sol/internal/logic/payload/common"
	"oracle-payload-sol/pkg/logger"
	"time"
)

// PayloadServiceContext 包含一次 payload 执行所需的资源
type PayloadServiceContext struct {
	Config  config.PayloadConfig
	Handler common.Handler
	Ctx     *common.Context
}

// NewPayloadServiceContext 解析配置中的 payload，未注册的名称直接返回错误
func NewPayloadServiceContext(c config.PayloadConfig, now func() time.Time) (*PayloadServiceContext, error) {
	h, err := payload.Lookup(c.Payload)
	if err != nil {
		logger.Errorf("payload 初始化失败: %v", err)
		return nil, err
	}

	logger.Debugf("payload 服务上下文初始化完成: payload=%s, input_env=%s", c.Payload, c.InputEnv)
	return &PayloadServiceContext{
		Config:  c,
		Handler: h,
		Ctx:     common.NewContext(now),
	}, nil
}

// Run 读取输入并构造 Response。输入校验在任何地址推导之前完成。
func (s *PayloadServiceContext) Run() (*domain.Response, error) {
	in, err := input.FromEnv(s.Config.InputEnv, s.Handler.Required...)
	if err != nil {
		return nil, err
	}
	return s.Handler.Build(s.Ctx, in)
}
