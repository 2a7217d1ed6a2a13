package main

import (
	"os"

	"github.com/miloscript/monify/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
