package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keyline/internal/command"
	"github.com/dshills/keyline/internal/logging"
)

// memFS is an in-memory file system for testing.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

type failFS struct{}

func (failFS) ReadFile(string) ([]byte, error) {
	return nil, fs.ErrPermission
}

func noEnv(string) (string, bool) { return "", false }

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ">", cfg.Prompt)
	assert.Equal(t, command.DefaultSyntax, cfg.Syntax())
	assert.Equal(t, 1, cfg.Margin)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelInfo, level)
}

func TestLoadTOML(t *testing.T) {
	fsys := memFS{"/etc/keyline.toml": `
prompt = "kl>"
quote = "'"
log_level = "debug"

[keys]
"line.submit" = ["Enter", "Ctrl+J"]
`}

	cfg, err := LoadFS(fsys, "/etc/keyline.toml", noEnv)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "kl>", cfg.Prompt)
	assert.Equal(t, command.Syntax{Separator: ' ', Quote: '\''}, cfg.Syntax())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Margin, "unset settings keep defaults")
	assert.Equal(t, []string{"Enter", "Ctrl+J"}, cfg.Keys["line.submit"])
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"keyline.yml": `
prompt: "$"
separator: ","
margin: 3
script: cmds.lua
keys:
  view.repaint: [F5]
`}

	cfg, err := LoadFS(fsys, "keyline.yml", noEnv)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "$", cfg.Prompt)
	assert.Equal(t, ',', cfg.Syntax().Separator)
	assert.Equal(t, 3, cfg.Margin)
	assert.Equal(t, "cmds.lua", cfg.Script)
	assert.Equal(t, []string{"F5"}, cfg.Keys["view.repaint"])
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := LoadFS(memFS{"k.yaml": ""}, "k.yaml", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFS(memFS{}, "/nope.toml", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys FileSystem
		path string
		is   error
	}{
		{"bad toml", memFS{"a.toml": "prompt = "}, "a.toml", nil},
		{"unknown toml field", memFS{"a.toml": `colour = "red"`}, "a.toml", nil},
		{"unknown yaml field", memFS{"a.yaml": "colour: red"}, "a.yaml", nil},
		{"unsupported", memFS{"a.json": "{}"}, "a.json", ErrUnsupportedFormat},
		{"unreadable", failFS{}, "a.toml", fs.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys, tt.path, noEnv)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "got %v", err)
			assert.Equal(t, tt.path, loadErr.Path)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	fsys := memFS{"k.toml": `prompt = "file>"` + "\n" + `log_file = "a.log"`}
	vars := map[string]string{
		"KEYLINE_PROMPT":    "env>",
		"KEYLINE_LOG_LEVEL": "warn",
		"KEYLINE_LOG_FILE":  "",
		"KEYLINE_SCRIPT":    "s.lua",
		"KEYLINE_MARGIN":    " 2 ",
	}

	cfg, err := LoadFS(fsys, "k.toml", env(vars))
	require.NoError(t, err)

	assert.Equal(t, "env>", cfg.Prompt)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile, "empty variables still override")
	assert.Equal(t, "s.lua", cfg.Script)
	assert.Equal(t, 2, cfg.Margin)
}

func TestEnvBadMargin(t *testing.T) {
	_, err := LoadFS(memFS{}, "", env(map[string]string{"KEYLINE_MARGIN": "wide"}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadFromOS(t *testing.T) {
	t.Setenv("KEYLINE_PROMPT", "os>")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "os>", cfg.Prompt)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty prompt", func(c *Config) { c.Prompt = "" }, false},
		{"long separator", func(c *Config) { c.Separator = "ab" }, false},
		{"empty quote", func(c *Config) { c.Quote = "" }, false},
		{"separator equals quote", func(c *Config) { c.Quote = " " }, false},
		{"negative margin", func(c *Config) { c.Margin = -1 }, false},
		{"zero margin", func(c *Config) { c.Margin = 0 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"unknown action", func(c *Config) { c.Keys = map[string][]string{"line.explode": {"F1"}} }, false},
		{"bad key", func(c *Config) { c.Keys = map[string][]string{"line.submit": {"Hyper+Q"}} }, false},
		{"good keys", func(c *Config) { c.Keys = map[string][]string{"line.submit": {"<C-j>", "Enter"}} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Prompt = ""
	cfg.Margin = -2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt")
	assert.Contains(t, err.Error(), "margin")
}
