package config

func developmentConfig() Config {
	cfg := Config{
		Env:          EnvDevelopment,
		Culture:      "en-US",
		CulturesFile: "",
		LogLevel:     "debug",
	}
	applyEnv(&cfg)
	return cfg
}
