package main

import (
	"os"

	"github.com/ldnexus/match-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
