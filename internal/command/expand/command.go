// Package expand 提供连番展开的根命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-renban/internal/command"
)

// AppName 应用名称。
const AppName = "renban"

// Version 构建时可通过 -ldflags "-X" 覆盖。
var Version = "dev"

// Command 根命令
var Command = NewCommand()

// NewCommand 创建一个新的根命令实例。
//
// 不注册 help 子命令，且首个位置参数之后停止解析 flags，
// 保证任何 pattern 都交给展开逻辑处理。
func NewCommand() *cli.Command {
	stopAfterPattern := 1

	return &cli.Command{
		Name:            AppName,
		Usage:           "展开 [from-to] 数字区间，如 img[01-03].jpg",
		ArgsUsage:       "<pattern>",
		Version:         Version,
		Action:          action,
		HideHelpCommand: true,
		StopOnNthArg:    &stopAfterPattern,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: command.Defaults.Log.Level,
				Usage: "日志级别 (debug|info|warn|error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: command.Defaults.Log.Format,
				Usage: "日志格式 (text|json)",
			},
			&cli.StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径，可重复，命中首个可读文件即停止",
			},
		},
	}
}
