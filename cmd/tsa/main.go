package main

import (
	"os"

	"github.com/sartorproj/tsframe/cmd/tsa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
