// Package cli implements the carestore command line interface.
//
// Every command is a thin wrapper over one store operation; the CLI owns
// presentation and exit codes, the store owns semantics.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshetty/carestore/internal/config"
	"github.com/rshetty/carestore/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DBPath     string // overrides the config file's db_path when set
	ConfigPath string
}

// NewRootCommand creates the root command for the carestore CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "carestore",
		Short: "carestore - local ordering store",
		Long:  "Persistence layer CLI for the carestore ordering application: users, carts and the order ledger in one SQLite file.",
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "SQLite database file (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "carestore.yaml", "config file path")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))

	return cmd
}

// openStore resolves configuration and opens the database.
func (o *RootOptions) openStore() (*store.Store, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	path := cfg.DBPath
	if o.DBPath != "" {
		path = o.DBPath
	}

	s, err := store.OpenWith(path, store.Options{BusyTimeout: cfg.BusyTimeout()})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open store", err)
	}
	return s, nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
