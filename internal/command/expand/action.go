package expand

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-renban/internal/command"
	"github.com/lwmacct/251014-go-pkg-renban/internal/config"
	"github.com/lwmacct/251014-go-pkg-renban/pkg/cfgm"
	"github.com/lwmacct/251014-go-pkg-renban/pkg/renban"
)

// ErrMissingPattern 未提供 pattern 参数。
var ErrMissingPattern = errors.New("missing required argument: <pattern>")

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return ErrMissingPattern
	}
	pattern := cmd.Args().First()

	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(),
		cfgm.WithConfigPaths(cmd.StringSlice("config")...),
		cfgm.WithEnvPrefix(command.EnvPrefix),
	)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stderr := cmd.Root().ErrWriter
	if stderr == nil {
		stderr = os.Stderr
	}
	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if extra := cmd.NArg() - 1; extra > 0 {
		logger.DebugContext(ctx, "Ignoring extra arguments", "count", extra)
	}

	stdout := cmd.Root().Writer
	if stdout == nil {
		stdout = os.Stdout
	}
	out := bufio.NewWriter(stdout)

	list, err := renban.ExpandAll(pattern)
	if err != nil {
		// 展开失败不视为错误，原样输出且不换行
		logger.DebugContext(ctx, "Expansion failed, echoing input", "pattern", pattern, "error", err)
		_, _ = io.WriteString(out, pattern)

		return flush(out)
	}

	logger.DebugContext(ctx, "Expanded pattern", "pattern", pattern, "count", len(list))
	for _, s := range list {
		_, _ = out.WriteString(s)
		_ = out.WriteByte('\n')
	}

	return flush(out)
}

func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
