package cfgm

import "github.com/urfave/cli/v3"

// options 配置加载选项。
type options struct {
	cmd         *cli.Command
	configPaths []string // 为空时不读取任何配置文件
	envPrefix   string
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，显式设置的 flags 覆盖其它来源（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithConfigPaths 设置配置文件候选路径，按顺序查找，命中首个可读文件即停止。
//
// 可多次调用，路径会追加。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = append(o.configPaths, paths...)
	}
}

// WithEnvPrefix 启用环境变量覆盖。
//
// 前缀 + 大写的配置 key，"." 与 "-" 转为 "_"。
// 例如前缀 "RENBAN_" 时，log.level → RENBAN_LOG_LEVEL。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}
