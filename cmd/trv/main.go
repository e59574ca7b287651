package main

import (
	"os"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/cmd/trv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
