package main

import (
	"flag"
	"oracle-payload-sol/internal/config"
	"oracle-payload-sol/internal/logic/codec"
	"oracle-payload-sol/internal/svc"
	"oracle-payload-sol/pkg/logger"
	"os"
	"runtime/debug"
	"time"
)

var configFile = flag.String("f", "", "the config file, built-in defaults are used when empty")

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			code = 2
		}
	}()

	flag.Parse()

	c, err := config.Load(*configFile)
	if err != nil {
		logger.Errorf("配置加载失败: %v", err)
		return 1
	}
	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		logger.Errorf("日志初始化失败: %v", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Infof("Starting payload %s, input from $%s", c.Payload, c.InputEnv)

	serviceContext, err := svc.NewPayloadServiceContext(c, time.Now)
	if err != nil {
		return 1
	}

	resp, err := serviceContext.Run()
	if err != nil {
		logger.Errorf("[payload] %s failed: %v", c.Payload, err)
		return 1
	}

	// stdout 只输出 Response，日志全部走 stderr 或文件
	if err := codec.Write(os.Stdout, resp); err != nil {
		logger.Errorf("[payload] write response failed: %v", err)
		return 1
	}
	return 0
}
