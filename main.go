package main

import (
	"os"

	"github.com/mossyhq/binminder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
