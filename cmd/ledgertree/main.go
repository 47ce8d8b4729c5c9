package main

import (
	"os"

	"github.com/ledgertree/ledgertree/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
