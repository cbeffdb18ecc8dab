package main

import (
	"os"

	"tokamakauth/cmd/tokamakauth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
