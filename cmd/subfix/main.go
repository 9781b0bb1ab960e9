package main

import (
	"os"

	"github.com/okhalid/subfix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
