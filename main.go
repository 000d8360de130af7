package main

import (
	"os"

	"github.com/pedro199288/reelforge-sub003/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
