package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bnema/slotguard/internal/domain"
	"github.com/spf13/cobra"
)

func newPagesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Inspect stored enderlink pages",
	}

	cmd.AddCommand(newPagesShowCmd(app))
	return cmd
}

func newPagesShowCmd(app *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "show <user>",
		Short: "Show a user's stored page, the current one by default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user := domain.UserID(args[0])

			indexes, err := app.pages.Pages(ctx, user)
			if err != nil {
				return err
			}
			current, err := app.pages.CurrentPage(ctx, user)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("page") {
				page = current
			}

			items, err := app.pages.LoadPage(ctx, user, page)
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "user: %s  page: %d  current: %d  stored: %s\n", user, page, current, joinInts(indexes))
			if len(items) == 0 {
				b.WriteString("No items stored.\n")
			}
			for _, slot := range slices.Sorted(maps.Keys(items)) {
				stack := items[slot]
				fmt.Fprintf(&b, "  slot %2d: %s x%d\n", slot, stack.Label(), stack.Amount)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page index to show")
	return cmd
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ",")
}
