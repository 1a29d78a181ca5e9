package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultMaxQuestions caps the gap-filling loop when the classifier keeps
// reporting open points
const DefaultMaxQuestions = 10

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	HTTPPort string `yaml:"httpPort"`

	// RedisAddr enables the Redis session store when set; empty means the
	// in-memory store
	RedisAddr string `yaml:"redisAddr"`

	// SessionTTLMinutes bounds how long an idle session survives in Redis
	SessionTTLMinutes int `yaml:"sessionTtlMinutes"`

	// MaxQuestions is the iteration budget for the question loop
	MaxQuestions int `yaml:"maxQuestions"`

	Log LogConfig `yaml:"log"`
	AI  *AIConfig `yaml:"ai"`
}

// Load builds the configuration from defaults, an optional YAML file named
// by CONFIG_FILE, and environment overrides, in that order.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:          "8080",
		SessionTTLMinutes: 120,
		MaxQuestions:      DefaultMaxQuestions,
		Log:               LogConfig{Level: "info"},
		AI:                DefaultAIConfig(),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.HTTPPort = getEnvOrDefault("PORT", cfg.HTTPPort)
	cfg.RedisAddr = getEnvOrDefault("REDIS_ADDR", cfg.RedisAddr)
	cfg.Log.Level = getEnvOrDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnvOrDefault("LOG_FILE", cfg.Log.File)
	if v := os.Getenv("MAX_QUESTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_QUESTIONS %q", v)
		}
		cfg.MaxQuestions = n
	}
	if cfg.AI == nil {
		cfg.AI = DefaultAIConfig()
	}

	return cfg, nil
}
