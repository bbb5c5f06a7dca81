package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	configMap := structToMap(defaultConfig)

	if err := applyConfigFile(configMap, o.configPaths); err != nil {
		return nil, err
	}

	keys := collectConfigKeys(reflect.TypeOf(defaultConfig))

	if o.envPrefix != "" {
		for envKey, path := range generateEnvBindings(o.envPrefix, keys) {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, path, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", path)
			}
		}
	}

	if o.cmd != nil {
		for path, typ := range keys {
			flag := strings.ReplaceAll(path, ".", "-")
			if !o.cmd.IsSet(flag) {
				continue
			}
			if val, ok := flagValue(o.cmd, flag, typ); ok {
				setByPath(configMap, path, val)
			}
		}
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，自动注入 [WithCommand]。
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(),
//	    cfgm.WithEnvPrefix("RENBAN_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, opts ...Option) (*T, error) {
	return Load(defaultConfig, append([]Option{WithCommand(cmd)}, opts...)...)
}

// applyConfigFile 合并首个可读的配置文件。
func applyConfigFile(configMap map[string]any, paths []string) error {
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path)

		return nil
	}

	if len(paths) > 0 {
		slog.Debug("No config file found, using defaults", "paths", paths)
	}

	return nil
}

// flagValue 按字段类型读取 CLI 值，不支持的类型返回 false。
func flagValue(cmd *cli.Command, flag string, typ reflect.Type) (any, bool) {
	if typ == durationType {
		return cmd.Duration(flag), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(flag), true
	case reflect.Bool:
		return cmd.Bool(flag), true
	case reflect.Int:
		return cmd.Int(flag), true
	case reflect.Int64:
		return cmd.Int64(flag), true
	case reflect.Float64:
		return cmd.Float64(flag), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(flag), true
		}
	}

	return nil, false
}

var durationType = reflect.TypeFor[time.Duration]()
