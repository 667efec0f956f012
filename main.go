package main

import (
	"os"

	"github.com/madboat/madboat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
