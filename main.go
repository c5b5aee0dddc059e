package main

import (
	"os"

	"github.com/gfranca/mestre/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
