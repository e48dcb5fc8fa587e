//go:build testing

package config

const isTesting = true

func testingConfig() Config {
	devCfg := developmentConfig()
	return Config{
		Env:          EnvTesting,
		Culture:      "invariant",
		CulturesFile: "",
		LogLevel:     devCfg.LogLevel,
	}
}
