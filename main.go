package main

import (
	"os"

	"github.com/tanmayb/wordgym/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
