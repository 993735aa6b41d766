package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// CartOptions holds flags shared by the cart subcommands.
type CartOptions struct {
	*RootOptions
	OType string
}

// NewCartCommand creates the cart command and its subcommands.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage a user's cart",
	}

	cmd.AddCommand(newCartAddCommand(rootOpts))
	cmd.AddCommand(newCartListCommand(rootOpts))
	cmd.AddCommand(newCartRemoveCommand(rootOpts))
	cmd.AddCommand(newCartClearCommand(rootOpts))

	return cmd
}

func newCartAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <username> <product> <price>",
		Short: "Add an item to the cart",
		Long: `Add an item to the cart.

The insert is unconditional: adding the same item twice yields two entries.
The username is not checked against the registry.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, product := args[0], args[1]
			price, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid price %q", args[2]), err)
			}

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.AddCartItem(cmd.Context(), username, product, price, opts.OType); err != nil {
				return WrapExitError(ExitCommandError, "cart add", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s's cart\n", product, username)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.OType, "type", "product", "category tag for the item")

	return cmd
}

func newCartListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list <username>",
		Short:         "List cart contents",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if opts.OType != "" {
				rows, err := s.CartItemsByCategory(cmd.Context(), username, opts.OType)
				if err != nil {
					return WrapExitError(ExitCommandError, "cart list", err)
				}
				for _, row := range rows {
					fmt.Fprintln(cmd.OutOrStdout(), row)
				}
				return nil
			}

			lines, err := s.CartItems(cmd.Context(), username)
			if err != nil {
				return WrapExitError(ExitCommandError, "cart list", err)
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line.Display())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.OType, "type", "", "only list this category tag")

	return cmd
}

func newCartRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username> <type>",
		Short: "Remove all items of one category",
		Long: `Remove all of the user's cart items carrying the given category tag.
Removing a category with no items is not an error.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, otype := args[0], args[1]

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.RemoveCartCategory(cmd.Context(), username, otype); err != nil {
				return WrapExitError(ExitCommandError, "cart remove", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s items from %s's cart\n", otype, username)
			return nil
		},
	}
}

func newCartClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear <username>",
		Short:         "Empty the cart, all categories",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ClearCart(cmd.Context(), username); err != nil {
				return WrapExitError(ExitCommandError, "cart clear", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s's cart\n", username)
			return nil
		},
	}
}
