package main

import (
	"os"

	"github.com/abuammar/academy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
