package main

import (
	"os"

	"authsession/cmd/authsession/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
