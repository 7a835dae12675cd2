package main

import (
	"os"

	"github.com/unhappychoice/gittype/cmd/gittype/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
