package main

import (
	"os"

	"github.com/msto63/calword/cmd/calword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
