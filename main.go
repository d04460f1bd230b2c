package main

import (
	"os"

	"github.com/navrail/navrail/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
