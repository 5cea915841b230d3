package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"reno/pkg/store"
)

const (
	xdgAppName = "reno"
	configFile = "config.yaml"
)

type Config struct {
	APIURL       string        `yaml:"api_url" env:"RENO_API_URL" env-default:"http://localhost:5000/api"`
	Timeout      time.Duration `yaml:"timeout" env:"RENO_TIMEOUT" env-default:"15s"`
	LogLevel     string        `yaml:"log_level" env:"RENO_LOG_LEVEL" env-default:"error"`
	DBPath       string        `yaml:"db_path" env:"RENO_DB_PATH"`
	PollInterval time.Duration `yaml:"poll_interval" env:"RENO_POLL_INTERVAL" env-default:"60s"`
	PhoneRegion  string        `yaml:"phone_region" env:"RENO_PHONE_REGION" env-default:"IN"`
	PhotoMaxEdge int           `yaml:"photo_max_edge" env:"RENO_PHOTO_MAX_EDGE" env-default:"1600"`
	Currency     string        `yaml:"currency" env:"RENO_CURRENCY" env-default:"INR"`
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName, configFile), nil
}

// Load reads .env into the environment, then the YAML file at path. A
// missing file falls back to environment variables and defaults; an empty
// path means the default location.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot read config %q: %w", path, err)
		}
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
	}

	if cfg.DBPath == "" {
		cfg.DBPath = store.DefaultPath()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Minute
	}
	return &cfg, nil
}
