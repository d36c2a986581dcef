package main

import (
	"os"

	"github.com/solatis/railplanner/cmd/railplanner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
