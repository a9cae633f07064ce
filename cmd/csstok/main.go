package main

import (
	"os"

	"github.com/iamdustan/postcss/cmd/csstok/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
