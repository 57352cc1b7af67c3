package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/spf13/cobra"
)

func newLedgerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and fund player balances",
	}

	cmd.AddCommand(newLedgerBalanceCmd(app), newLedgerDepositCmd(app))
	return cmd
}

func newLedgerBalanceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [user]",
		Short: "Show one balance, or every account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				user := domain.UserID(args[0])
				balance, err := app.ledger.Balance(cmd.Context(), user)
				if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
					return err
				}
				_, err = fmt.Fprintf(out, "%s: %.2f\n", user, balance)
				return err
			}

			balances, order, err := app.ledger.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			if len(order) == 0 {
				_, err = fmt.Fprintln(out, "No accounts.")
				return err
			}
			for _, user := range order {
				if _, err := fmt.Fprintf(out, "%s: %.2f\n", user, balances[user]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newLedgerDepositCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <user> <amount>",
		Short: "Add funds to a balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := domain.UserID(args[0])
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse amount %q: %w", args[1], err)
			}

			if err := app.ledger.Deposit(cmd.Context(), user, amount); err != nil {
				return err
			}

			balance, err := app.ledger.Balance(cmd.Context(), user)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f\n", user, balance)
			return err
		},
	}
}
