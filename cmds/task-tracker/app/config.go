package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/goutils/generics"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

const CONFIG_FILE = ".task-tracker"

const ENV_FILE = "TASK_TRACKER_FILE"
const ENV_LOG_LEVEL = "TASK_TRACKER_LOG_LEVEL"

type Config struct {
	File     *string `json:"file,omitempty"`
	LogLevel *string `json:"logLevel,omitempty"`
}

// GetConfig merges the config files found in the home directory,
// the user config directory and the current directory, and the
// environment. Later sources win. The file path may contain
// environment variable references.
func GetConfig(fs vfs.FileSystem) (*Config, error) {
	var cfg Config

	var paths []string
	if dir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(dir, CONFIG_FILE))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, CONFIG_FILE))
	}
	paths = append(paths, CONFIG_FILE)

	for _, p := range paths {
		add, err := ReadConfig(fs, p)
		if err != nil {
			return nil, err
		}
		MergeConfig(&cfg, add)
	}

	if v := os.Getenv(ENV_FILE); v != "" {
		cfg.File = generics.Pointer(v)
	}
	if v := os.Getenv(ENV_LOG_LEVEL); v != "" {
		cfg.LogLevel = generics.Pointer(v)
	}

	if cfg.File == nil || *cfg.File == "" {
		cfg.File = generics.Pointer(DEFAULT_FILE)
	} else {
		f, err := envsubst.EvalEnv(*cfg.File)
		if err != nil {
			return nil, fmt.Errorf("invalid task file %q: %w", *cfg.File, err)
		}
		cfg.File = &f
	}
	if cfg.LogLevel == nil || *cfg.LogLevel == "" {
		cfg.LogLevel = generics.Pointer(DEFAULT_LOG_LEVEL)
	}
	return &cfg, nil
}

// ReadConfig reads a config file. A missing file
// results in a nil config.
func ReadConfig(fs vfs.FileSystem, path string) (*Config, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	err = yaml.UnmarshalStrict(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return &cfg, nil
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.File != nil {
		cfg.File = add.File
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
}
