package app

import (
	"os"
	"path/filepath"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/drivebind/pkg/utils"
)

const CONFIG_FILE = ".drivectl"

const (
	ENV_SPACE  = "DRIVECTL_SPACE"
	ENV_SERVER = "DRIVECTL_SERVER"
)

// Config is the content of a .drivectl file. Environment
// references (${VAR}) are expanded before parsing.
type Config struct {
	Space    *string `json:"space,omitempty"`
	Server   *string `json:"server,omitempty"`
	LogLevel *string `json:"logLevel,omitempty"`
}

// GetConfig merges the config files found in the home directory,
// the user config directory and the current directory. The
// environment overrides the configured space and server.
func GetConfig(fs vfs.FileSystem) *Config {
	var cfg Config

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_FILE))

	if v := os.Getenv(ENV_SPACE); v != "" {
		cfg.Space = utils.Pointer(v)
	}
	if v := os.Getenv(ENV_SERVER); v != "" {
		cfg.Server = utils.Pointer(v)
	}
	if cfg.LogLevel == nil || *cfg.LogLevel == "" {
		cfg.LogLevel = utils.Pointer("info")
	}
	return &cfg
}

func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}
	s, err := envsubst.EvalEnv(string(data))
	if err != nil {
		log.LogError(err, "invalid config file {{path}}", "path", path)
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal([]byte(s), &cfg)
	if err != nil {
		log.LogError(err, "invalid config file {{path}}", "path", path)
		return nil
	}
	log.Debug("using config file {{path}}", "path", path)
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Space != nil {
		cfg.Space = add.Space
	}
	if add.Server != nil {
		cfg.Server = add.Server
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
