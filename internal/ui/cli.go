// Package ui provides the cobra command-line interface for rota.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotacli/rota/internal/config"
	"github.com/rotacli/rota/internal/db"
	"github.com/rotacli/rota/internal/shift"
	"github.com/rotacli/rota/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store   *db.SQLite
	orch    *shift.Orchestrator
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
}

// NewApp creates a new CLI application with the given config. The store
// is opened lazily on first use.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "rota",
		Short: "A terminal staff rota planner",
		Long: `Rota is a terminal tool for planning weekly staff schedules.

Running it without a subcommand opens the interactive weekly grid:
drag across empty hours to draft a shift, click a shift to edit it,
and publish the week when the rota is ready.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(store, store, a.orchestrator(), a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to rota-debug.log)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.staffCmd())
	a.root.AddCommand(a.weekCmd())

	return a
}

// openStore opens the SQLite store on first use.
func (a *App) openStore() (*db.SQLite, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.store = store
	return store, nil
}

// orchestrator returns the save orchestrator bound to the store.
func (a *App) orchestrator() *shift.Orchestrator {
	if a.orch == nil {
		a.orch = shift.NewOrchestrator(a.store)
	}
	return a.orch
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rota %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the store if it was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
