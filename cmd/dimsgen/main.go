package main

import (
	"fmt"
	"os"

	"github.com/teranos/dims/cmd/dimsgen/cmd"
)

func main() {
	if err := cmd.DimsgenCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
