// Package command 提供命令行功能。
package command

import "github.com/lwmacct/251014-go-pkg-renban/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// EnvPrefix 环境变量前缀。
const EnvPrefix = "RENBAN_"
