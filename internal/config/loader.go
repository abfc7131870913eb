package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSystem is the file access Load needs.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// EnvPrefix starts the name of every environment variable Load reads.
const EnvPrefix = "KEYLINE_"

// Load reads the defaults, the file at path (if any) and the environment.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	return LoadFS(OSFS{}, path, os.LookupEnv)
}

// LoadFS is Load with explicit file and environment access.
func LoadFS(fsys FileSystem, path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(fsys, path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(fsys FileSystem, path string) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &LoadError{Path: path, Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(c)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(c)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// envMapping maps environment variables to the settings they override.
var envMapping = map[string]func(c *Config, v string) error{
	EnvPrefix + "PROMPT":    func(c *Config, v string) error { c.Prompt = v; return nil },
	EnvPrefix + "LOG_LEVEL": func(c *Config, v string) error { c.LogLevel = v; return nil },
	EnvPrefix + "LOG_FILE":  func(c *Config, v string) error { c.LogFile = v; return nil },
	EnvPrefix + "SCRIPT":    func(c *Config, v string) error { c.Script = v; return nil },
	EnvPrefix + "MARGIN": func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return invalid("margin", "%s: %v", EnvPrefix+"MARGIN", err)
		}
		c.Margin = n
		return nil
	},
}

// applyEnv overlays set variables. Empty values count as set.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for name, set := range envMapping {
		if v, ok := lookup(name); ok {
			if err := set(c, v); err != nil {
				return err
			}
		}
	}
	return nil
}
