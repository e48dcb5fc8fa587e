package main

import (
	"os"

	"spanparse/cmd"
	"spanparse/log"
)

func main() {
	rootCmd := cmd.NewRoot()
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("spanparse failed")
		os.Exit(1)
	}
}
