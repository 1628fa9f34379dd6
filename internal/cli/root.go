package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davidmoss/plank/internal/domain"
	"github.com/davidmoss/plank/internal/store"
)

// App holds the project store and environment hooks used by the CLI.
// The store is constructed once in main and injected here; nothing in the
// program reaches it through a global.
type App struct {
	Store *store.Store

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "plank" command, which launches the
// board TUI against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "plank",
		Short:        "A project board for the terminal",
		Long:         "Plank is a small project board: submit projects via a form,\nthen carry cards between the Active and Finished columns.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("plank needs an interactive terminal")
			}

			if demo, _ := cmd.Flags().GetBool("demo"); demo && app.Store.Len() == 0 {
				SeedDemo(app.Store)
			}

			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	addRootFlags(root.Flags())

	return root
}

func addRootFlags(fs *pflag.FlagSet) {
	fs.Bool("demo", false, "start with a few sample projects on the board")
}

// SeedDemo fills an empty store with sample projects so the board has
// something to show. Also reachable via the PLANK_DEMO environment variable.
func SeedDemo(s *store.Store) {
	s.Add("Plan launch", "Coordinate the v1 announcement", 3)
	s.Add("Write onboarding docs", "Getting-started guide for new hires", 2)
	done := s.Add("Office move", "", 5)
	s.Move(done.ID, domain.StatusFinished)
}
