package main

import (
	"os"

	"github.com/utbc-labs/utbc/cmd/utbcd/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
