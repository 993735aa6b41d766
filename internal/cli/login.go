package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Check credentials",
		Long: `Check credentials against the user registry.

The comparison is byte-exact on both fields. Exits 0 when the credentials
match and 1 when they don't.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password := args[0], args[1]

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ok, err := s.Login(cmd.Context(), username, password)
			if err != nil {
				return WrapExitError(ExitCommandError, "login", err)
			}
			if !ok {
				return NewExitError(ExitFailure, "invalid username or password")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "welcome %s\n", username)
			return nil
		},
	}
}
