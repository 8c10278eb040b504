package main

import (
	"os"

	"github.com/teacats/aoc2015/cmd/day1/cmd"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

func main() {
	cmd.Version = Version
	cmd.Commit = Commit
	os.Exit(cmd.Execute())
}
