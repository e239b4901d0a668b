package main

import (
	"os"

	"github.com/arjunv/cognify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
