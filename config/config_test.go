//go:build testing

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestingConfig(t *testing.T) {
	require.Equal(t, EnvTesting, Cfg.Env)
	require.True(t, Cfg.Env.IsDevOrTest())
	require.Equal(t, "invariant", Cfg.Culture)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SPANPARSE_CULTURE", "de-DE")
	t.Setenv("SPANPARSE_LOG_LEVEL", "warn")

	cfg := productionConfig()
	require.Equal(t, EnvProduction, cfg.Env)
	require.Equal(t, "de-DE", cfg.Culture)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "", cfg.CulturesFile)
	require.False(t, cfg.Env.IsDevOrTest())
}

func TestDevelopmentDefaults(t *testing.T) {
	cfg := developmentConfig()
	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Equal(t, "en-US", cfg.Culture)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "development", cfg.Env.String())
}
