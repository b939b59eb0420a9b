package main

import (
	"fmt"
	"os"

	"github.com/OTrepse/jsoncrack.com/cmd"
	"github.com/OTrepse/jsoncrack.com/pkg/logger"
)

func main() {
	exitCode := 0
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
