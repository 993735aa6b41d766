package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshetty/carestore/internal/store"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <email> <password>",
		Short: "Register a new user",
		Long: `Register a new user.

The password is stored exactly as given - hash it first if that matters to
you. A username or email that is already taken is reported as a conflict.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, email, password := args[0], args[1], args[2]

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.RegisterUser(cmd.Context(), username, email, password); err != nil {
				if store.IsConstraintViolation(err) {
					return NewExitError(ExitFailure,
						fmt.Sprintf("username %q or email %q is already registered", username, email))
				}
				return WrapExitError(ExitCommandError, "register", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", username)
			return nil
		},
	}
}
