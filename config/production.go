package config

import (
	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	Env          string `env:"ENV" envDefault:"production"`
	Culture      string `env:"CULTURE"`
	CulturesFile string `env:"CULTURES_FILE"`
	LogLevel     string `env:"LOG_LEVEL"`
}

func productionConfig() Config {
	cfg := Config{
		Env:          EnvProduction,
		Culture:      "invariant",
		CulturesFile: "",
		LogLevel:     "info",
	}
	applyEnv(&cfg)
	return cfg
}

// applyEnv overlays SPANPARSE_* variables on cfg. Unset variables keep the
// defaults already in cfg.
func applyEnv(cfg *Config) {
	var parsed envConfig
	err := env.ParseWithOptions(&parsed, env.Options{Prefix: envPrefix}) //nolint:exhaustruct
	if err != nil {
		panic(err)
	}

	if parsed.Culture != "" {
		cfg.Culture = parsed.Culture
	}
	if parsed.CulturesFile != "" {
		cfg.CulturesFile = parsed.CulturesFile
	}
	if parsed.LogLevel != "" {
		cfg.LogLevel = parsed.LogLevel
	}
}
