package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/nzai/stockwatch/constants"
	"go.uber.org/zap"
)

// Config global config
type Config struct {
	Server   Server   `toml:"server"`
	Upstream Upstream `toml:"upstream"`
	Log      Log      `toml:"log"`
	Nsq      Nsq      `toml:"nsq"`
}

// Server http server config
type Server struct {
	Address string `toml:"address"`
	Pprof   bool   `toml:"pprof"`
}

// Upstream quote provider config
type Upstream struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
	// Disabled always serve demo data
	Disabled bool `toml:"disabled"`
}

// Timeout upstream request timeout
func (u Upstream) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// Log logger config
type Log struct {
	Level string `toml:"level"`
	// File rotate log file, empty means console only
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
}

// Nsq fallback notification config
type Nsq struct {
	Enabled bool   `toml:"enabled"`
	Broker  string `toml:"broker"`
	TLSCert string `toml:"tls_cert"`
	TLSKey  string `toml:"tls_key"`
	Topic   string `toml:"topic"`
}

// Default default config
func Default() *Config {
	return &Config{
		Server: Server{Address: constants.DefaultAddress},
		Upstream: Upstream{
			URL:            constants.DefaultUpstreamURL,
			TimeoutSeconds: int(constants.DefaultUpstreamTimeout / time.Second),
			UserAgent:      constants.DefaultUserAgent,
		},
		Log: Log{Level: "info", MaxSize: 100, MaxBackups: 3, MaxAge: 7},
		Nsq: Nsq{Topic: constants.DefaultNsqTopic},
	}
}

// Valid validate config
func (s Config) Valid() error {
	if strings.TrimSpace(s.Server.Address) == "" {
		return errors.New("server.address undefined")
	}

	if !s.Upstream.Disabled {
		if strings.TrimSpace(s.Upstream.URL) == "" {
			return errors.New("upstream.url undefined")
		}

		if s.Upstream.TimeoutSeconds <= 0 {
			return errors.New("upstream.timeout_seconds must be positive")
		}
	}

	if s.Nsq.Enabled {
		if strings.TrimSpace(s.Nsq.Broker) == "" {
			return errors.New("nsq.broker undefined")
		}

		if strings.TrimSpace(s.Nsq.Topic) == "" {
			return errors.New("nsq.topic undefined")
		}
	}

	return nil
}

// Parse parse config from file, then .env and environment variables
func Parse(filePath string) (*Config, error) {
	config := Default()
	if filePath != "" {
		_, err := toml.DecodeFile(filePath, config)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}

			zap.L().Warn("config file not found, use default", zap.String("path", filePath))
		}
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		zap.L().Warn("load .env failed", zap.Error(err))
	}

	applyEnv(config)

	return config, config.Valid()
}

func applyEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.Server.Address = v
	}

	if v := os.Getenv("UPSTREAM_URL"); v != "" {
		config.Upstream.URL = v
	}

	if v, err := strconv.Atoi(os.Getenv("UPSTREAM_TIMEOUT_SEC")); err == nil && v > 0 {
		config.Upstream.TimeoutSeconds = v
	}

	if v, err := strconv.ParseBool(os.Getenv("UPSTREAM_DISABLED")); err == nil {
		config.Upstream.Disabled = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}

	if v := os.Getenv("LOG_FILE"); v != "" {
		config.Log.File = v
	}

	if v := os.Getenv("NSQ_BROKER"); v != "" {
		config.Nsq.Broker = v
		config.Nsq.Enabled = true
	}

	if v := os.Getenv("NSQ_TOPIC"); v != "" {
		config.Nsq.Topic = v
	}
}
