package cfgm_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251014-go-pkg-renban/pkg/cfgm"
)

type testConfig struct {
	Name    string        `json:"name"`
	Debug   bool          `json:"debug"`
	Timeout time.Duration `json:"timeout"`
	Log     testLog       `json:"log"`
	Ignored string        `json:"-"`
}

type testLog struct {
	Level  string   `json:"level"`
	Fields []string `json:"fields"`
	Retain int      `json:"retain-days"`
}

func defaults() testConfig {
	return testConfig{
		Name:    "default",
		Timeout: 5 * time.Second,
		Log:     testLog{Level: "warn", Retain: 7},
		Ignored: "keep",
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := cfgm.Load(defaults())
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Name)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.Retain)
	assert.Empty(t, cfg.Log.Fields)
	assert.Empty(t, cfg.Ignored, "json:\"-\" fields are not loaded")
}

func TestLoad_ConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "c.yaml", content: "name: file\ntimeout: 1m\nlog:\n  level: debug\n  fields: [a, b]\n"},
		{name: "json", file: "c.json", content: `{"name":"file","timeout":"1m","log":{"level":"debug","fields":["a","b"]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cfg, err := cfgm.Load(defaults(), cfgm.WithConfigPaths("/nonexistent/c.yaml", path))
			require.NoError(t, err)
			assert.Equal(t, "file", cfg.Name)
			assert.Equal(t, time.Minute, cfg.Timeout)
			assert.Equal(t, "debug", cfg.Log.Level)
			assert.Equal(t, []string{"a", "b"}, cfg.Log.Fields)
			assert.Equal(t, 7, cfg.Log.Retain, "unset keys keep defaults")
		})
	}
}

func TestLoad_FirstFileWins(t *testing.T) {
	first := writeFile(t, "a.yaml", "name: first\n")
	second := writeFile(t, "b.yaml", "name: second\n")

	cfg, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(first), cfgm.WithConfigPaths(second))
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Name)
}

func TestLoad_BadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errMsg  string
	}{
		{name: "syntax", file: "c.yaml", content: "name: [x\n", errMsg: "parse config file"},
		{name: "root not object", file: "c.yaml", content: "- a\n- b\n", errMsg: "config root must be object"},
		{name: "json syntax", file: "c.json", content: "{", errMsg: "parse config file"},
		{name: "type mismatch", file: "c.yaml", content: "timeout: soon\n", errMsg: "unmarshal config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(writeFile(t, tt.file, tt.content)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(writeFile(t, "c.yaml", "")))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Name)
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("TEST_NAME", "env")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_LOG_RETAIN_DAYS", "30")
	t.Setenv("TEST_LOG_FIELDS", "x,y")

	path := writeFile(t, "c.yaml", "name: file\n")
	cfg, err := cfgm.Load(defaults(), cfgm.WithConfigPaths(path), cfgm.WithEnvPrefix("TEST_"))
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.Name, "env overrides file")
	assert.True(t, cfg.Debug)
	assert.Equal(t, 30, cfg.Log.Retain)
	assert.Equal(t, []string{"x", "y"}, cfg.Log.Fields)
}

func TestLoadCmd_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TEST_NAME", "env")
	t.Setenv("TEST_LOG_LEVEL", "info")

	var got *testConfig
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.DurationFlag{Name: "timeout"},
			&cli.StringFlag{Name: "log-level"},
			&cli.IntFlag{Name: "log-retain-days"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := cfgm.LoadCmd(cmd, defaults(), cfgm.WithEnvPrefix("TEST_"))
			got = cfg

			return err
		},
	}

	err := cmd.Run(context.Background(), []string{"test", "--name", "flag", "--timeout", "2s", "--log-retain-days", "1"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "flag", got.Name)
	assert.Equal(t, 2*time.Second, got.Timeout)
	assert.Equal(t, 1, got.Log.Retain)
	assert.Equal(t, "info", got.Log.Level, "unset flag does not override env")
}
