package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/davidmoss/plank/internal/cli"
	"github.com/davidmoss/plank/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// One store per running application, constructed here and handed to the
	// views that need it.
	projects := store.New()

	if os.Getenv("PLANK_DEMO") != "" {
		cli.SeedDemo(projects)
	}

	app := &cli.App{
		Store: projects,
	}

	// Detect interactive terminal before starting the TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
