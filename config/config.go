package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/util"
)

// FileName is looked up in the start directory and every parent.
const FileName = ".thumb-prettier.toml"

type FormatConfig struct {
	IndentWidth   int    `toml:"indent_width"`
	CommentGutter string `toml:"comment_gutter"`
}

type ServerConfig struct {
	LanguageServerAddr string `toml:"language_server_addr"`
	PreviewAddr        string `toml:"preview_addr"`
}

type LogConfig struct {
	Debug    bool   `toml:"debug"`
	Endpoint string `toml:"endpoint"` // empty sends debug output to stderr
}

type Config struct {
	Path   string       `toml:"-"` // file the config was read from, empty for defaults
	Format FormatConfig `toml:"format"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

func Default() *Config {
	return &Config{
		Format: FormatConfig{
			IndentWidth:   prettier.DefaultIndentWidth,
			CommentGutter: prettier.DefaultCommentGutter,
		},
		Server: ServerConfig{
			LanguageServerAddr: ":2035",
			PreviewAddr:        ":2036",
		},
		Log: LogConfig{
			Endpoint: util.DefaultLogEndpoint,
		},
	}
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load returns the nearest configuration above startDir, or the defaults
// when there is none.
func Load(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a single configuration file. Keys it does not know are an
// error so that typos do not silently fall back to defaults.
func LoadFile(path string) (*Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if conf.Format.IndentWidth < 0 {
		return nil, fmt.Errorf("%s: indent_width must not be negative", path)
	}
	conf.Path = path
	return conf, nil
}

func (c *Config) FormatOptions() prettier.Options {
	return prettier.Options{
		IndentWidth:   c.Format.IndentWidth,
		CommentGutter: c.Format.CommentGutter,
	}
}

// ApplyLogging configures the debug logger. debug forces tracing on.
func (c *Config) ApplyLogging(debug bool) {
	util.LoggingEnabled = debug || c.Log.Debug
	util.SetLogEndpoint(c.Log.Endpoint)
}
