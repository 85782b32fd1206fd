package main

import (
	"os"

	"github.com/issuepilot/issuepilot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
