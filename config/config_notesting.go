//go:build !testing

package config

const isTesting = false

func testingConfig() Config {
	panic("testing config outside of testing build")
}
