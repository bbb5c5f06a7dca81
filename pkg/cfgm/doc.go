// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 设置，未设置时不读取文件
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，仅用户显式指定的 flag 生效
//
// # 快速开始
//
//	type Config struct {
//	    Log struct {
//	        Level string `json:"level"`
//	    } `json:"log"`
//	}
//
//	cfg, err := cfgm.LoadCmd(cmd, Config{},
//	    cfgm.WithConfigPaths(cmd.StringSlice("config")...),
//	    cfgm.WithEnvPrefix("RENBAN_"),
//	)
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：log.level → --log-level。
package cfgm
