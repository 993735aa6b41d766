package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshetty/carestore/internal/store"
)

// OrderPlaceOptions holds flags for the order place command.
type OrderPlaceOptions struct {
	*RootOptions
	Fullname  string
	Package   string
	Price     float64
	Address   string
	ContactNo string
	Pincode   int
	Date      string
	Time      string
	Amount    float64
	OType     string
	KeepCart  bool
}

// OrderListOptions holds flags for the order list command.
type OrderListOptions struct {
	*RootOptions
	Format string
}

// NewOrderCommand creates the order command and its subcommands.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place orders and inspect the ledger",
	}

	cmd.AddCommand(newOrderPlaceCommand(rootOpts))
	cmd.AddCommand(newOrderListCommand(rootOpts))

	return cmd
}

func newOrderPlaceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderPlaceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "place <username>",
		Short: "Append an order to the ledger",
		Long: `Append one immutable order record to the ledger, then clear the user's
cart entries for the order's category (pass --keep-cart to skip that).

No field is validated; the ledger stores what it is given. The append and
the cart clear are two separate statements, not one transaction: a crash in
between leaves the order placed and the cart intact.`,
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

			rec := store.OrderRecord{
				Username:  username,
				Fullname:  opts.Fullname,
				Package:   opts.Package,
				Price:     opts.Price,
				Address:   opts.Address,
				ContactNo: opts.ContactNo,
				Pincode:   opts.Pincode,
				Date:      opts.Date,
				Time:      opts.Time,
				Amount:    opts.Amount,
				OType:     opts.OType,
			}
			if err := s.AppendOrder(cmd.Context(), rec); err != nil {
				return WrapExitError(ExitCommandError, "order place", err)
			}

			if !opts.KeepCart {
				if err := s.RemoveCartCategory(cmd.Context(), username, opts.OType); err != nil {
					return WrapExitError(ExitCommandError, "order place: clear cart", err)
				}
			}

			// Receipt token for the operator's records; nothing in the
			// ledger references it.
			receipt := uuid.Must(uuid.NewV7()).String()
			fmt.Fprintf(cmd.OutOrStdout(), "order placed for %s, receipt %s\n", username, receipt)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Fullname, "fullname", "", "customer full name")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package or product label")
	cmd.Flags().Float64Var(&opts.Price, "price", 0, "unit price")
	cmd.Flags().StringVar(&opts.Address, "address", "", "delivery address")
	cmd.Flags().StringVar(&opts.ContactNo, "contact", "", "contact number")
	cmd.Flags().IntVar(&opts.Pincode, "pincode", 0, "postal pincode")
	cmd.Flags().StringVar(&opts.Date, "date", "", "order date (free form)")
	cmd.Flags().StringVar(&opts.Time, "time", "", "order time (free form)")
	cmd.Flags().Float64Var(&opts.Amount, "amount", 0, "order total")
	cmd.Flags().StringVar(&opts.OType, "type", "product", "category tag")
	cmd.Flags().BoolVar(&opts.KeepCart, "keep-cart", false, "leave the cart category in place")

	return cmd
}

func newOrderListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list <username>",
		Short: "List a user's orders",
		Long: `List a user's ledger records.

The legacy format prints one $-delimited row per order:
fullname$package$price$address$contactno$pincode$date$time - amount and
category are stored but not part of that row. The table format shows both.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "legacy" && opts.Format != "table" {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be legacy or table", opts.Format))
			}

			username := args[0]

			s, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			recs, err := s.OrdersForUser(cmd.Context(), username)
			if err != nil {
				return WrapExitError(ExitCommandError, "order list", err)
			}

			out := cmd.OutOrStdout()
			if opts.Format == "legacy" {
				for _, rec := range recs {
					fmt.Fprintln(out, rec.DisplayRow())
				}
				return nil
			}

			prt := message.NewPrinter(language.English)
			fmt.Fprintf(out, "%-20s %-20s %10s %12s  %-10s %s\n",
				"PLACED BY", "PACKAGE", "PRICE", "AMOUNT", "DATE", "TIME")
			for _, rec := range recs {
				fmt.Fprintf(out, "%-20s %-20s %10s %12s  %-10s %s\n",
					rec.Fullname,
					rec.Package,
					prt.Sprintf("%.2f", rec.Price),
					prt.Sprintf("%.2f", rec.Amount),
					rec.Date,
					rec.Time,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (legacy|table)")

	return cmd
}
