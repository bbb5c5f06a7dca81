// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 仅在传入 --config 时读取
//  3. 环境变量 - RENBAN_ 前缀
//  4. CLI flags
//
// 配置只影响诊断输出，不影响展开结果。
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config 应用配置。
type Config struct {
	Log LogConfig `json:"log" desc:"日志配置"`
}

// LogConfig 日志配置，日志始终写入 stderr。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别 (debug|info|warn|error)"`
	Format string `json:"format" desc:"日志格式 (text|json)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// NewLogger 按配置创建写入 w 的 logger。
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", c.Format)
	}
}
