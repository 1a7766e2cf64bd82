package main

import (
	"os"

	"github.com/gamepulse/gamepulse-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
