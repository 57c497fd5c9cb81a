package main

import (
	"os"

	"prospect-finder/cmd/prospect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
