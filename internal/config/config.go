package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env              string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServerConfig `yaml:"http_server"`
	GitHubConfig     `yaml:"github"`
	ClientConfig     `yaml:"client"`
}

type HTTPServerConfig struct {
	Host          string        `yaml:"host" env-default:"localhost"`
	Port          int           `yaml:"port" env:"PORT" env-default:"3000"`
	Timeout       time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout   time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigin string        `yaml:"allowed_origin" env:"ALLOWED_ORIGIN" env-default:"http://localhost:3001"`
}

type GitHubConfig struct {
	Binary     string `yaml:"binary" env-default:"gh"`
	DefaultOrg string `yaml:"default_org" env:"DEFAULT_ORG" env-required:"true"`
	// Workers bounds the per-user fan-out in the aggregators.
	// 1 keeps upstream calls strictly sequential.
	Workers int `yaml:"workers" env-default:"1"`
}

type ClientConfig struct {
	APIURL       string `yaml:"api_url" env:"API_URL" env-default:"http://localhost:3000"`
	DefaultOwner string `yaml:"default_owner" env:"DEFAULT_OWNER"`
}

func Load() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file doesn't exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if cfg.ClientConfig.DefaultOwner == "" {
		cfg.ClientConfig.DefaultOwner = cfg.GitHubConfig.DefaultOrg
	}

	return &cfg
}

// LoadPath is Load with an explicit path, used by the tracker CLI where the
// config file comes from a flag rather than the environment.
func LoadPath(path string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	if cfg.ClientConfig.DefaultOwner == "" {
		cfg.ClientConfig.DefaultOwner = cfg.GitHubConfig.DefaultOrg
	}

	return &cfg, nil
}
