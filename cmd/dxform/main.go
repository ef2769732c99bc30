package main

import (
	"os"

	"github.com/dgallion1/dxform/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
