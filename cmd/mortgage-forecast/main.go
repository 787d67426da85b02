package main

import (
	"os"

	"github.com/iwvelando/mortgage-forecast/cmd/mortgage-forecast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
