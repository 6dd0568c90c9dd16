package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/flowscript/internal/app"
	"github.com/vk/flowscript/internal/cli"
)

// main is the entrypoint for the flowscript compiler.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	flowscriptApp := app.New(outW, logW, cfg)
	return flowscriptApp.Run(context.Background(), cfg)
}
