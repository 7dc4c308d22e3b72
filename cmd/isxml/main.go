package main

import (
	"errors"
	"fmt"
	"os"

	"xmlstring/cmd/isxml/commands"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	if !errors.Is(err, commands.ErrNotXML) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	os.Exit(commands.ExitCode(err))
}
