package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResetOptions holds flags for the reset command.
type ResetOptions struct {
	*RootOptions
	Yes bool
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate all tables (destroys all data)",
		Long: `Drop and recreate all three tables.

This destroys every user, cart entry and order. It refuses to run without
--yes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Yes {
				return NewExitError(ExitCommandError, "reset destroys all data; pass --yes to confirm")
			}

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Reset(cmd.Context()); err != nil {
				return WrapExitError(ExitCommandError, "reset", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "store reset: all tables recreated empty")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm the destructive reset")

	return cmd
}
