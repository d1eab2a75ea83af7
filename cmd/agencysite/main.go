package main

import (
	"os"

	"github.com/mediaonstake/agencysite/cmd/agencysite/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
