package main

import (
	"os"

	"github.com/teranos/dims/cmd/dims/commands"
	"github.com/teranos/dims/display"
	"github.com/teranos/dims/errors"
	"github.com/teranos/dims/logger"
)

func main() {
	defer logger.Cleanup()

	if err := commands.NewRootCmd().Execute(); err != nil {
		display.Error(os.Stderr, err, errors.GetAllHints(err))
		os.Exit(1)
	}
}
