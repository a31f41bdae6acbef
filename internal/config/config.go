package config

import (
	"fmt"
	"github.com/zeromicro/go-zero/core/conf"
	"oracle-payload-sol/internal/consts"
	"oracle-payload-sol/pkg/logger"
)

type LogConfig struct {
	Format   string `json:"format,default=console"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:"log_dir,optional"`       // 日志目录，为空时输出到 stderr
	Level    string `json:"level,default=info"`     // 日志级别：debug / info / warn / error
	Compress bool   `json:"compress,optional"`      // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// PayloadConfig 是 payload 进程的主配置
type PayloadConfig struct {
	LogConf  LogConfig `json:"logger,optional"`              // 日志配置
	Payload  string    `json:"payload,default=check-oracle"` // 使用的 payload，见 consts.Payload*
	InputEnv string    `json:"input_env,default=CAMB_INPUT"` // 输入 JSON 所在的环境变量
}

// Load 加载配置。file 为空时不读文件，全部使用默认值。
func Load(file string) (PayloadConfig, error) {
	var c PayloadConfig
	if file == "" {
		if err := conf.FillDefault(&c); err != nil {
			return c, fmt.Errorf("fill default config: %w", err)
		}
	} else if err := conf.Load(file, &c); err != nil {
		return c, fmt.Errorf("load config %s: %w", file, err)
	}
	c.normalize()
	return c, nil
}

// normalize 补齐 optional 嵌套结构中未被填充的默认值
func (c *PayloadConfig) normalize() {
	if c.Payload == "" {
		c.Payload = consts.PayloadCheckOracle
	}
	if c.InputEnv == "" {
		c.InputEnv = consts.DefaultInputEnv
	}
	if c.LogConf.Format == "" {
		c.LogConf.Format = logger.FormatConsole
	}
	if c.LogConf.Level == "" {
		c.LogConf.Level = "info"
	}
}
