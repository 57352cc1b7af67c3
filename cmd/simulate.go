package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ledger "github.com/bnema/slotguard/internal/adapters/ledger/toml"
	pages "github.com/bnema/slotguard/internal/adapters/pages/toml"
	"github.com/bnema/slotguard/internal/adapters/scenario"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *app) *cobra.Command {
	var persist bool

	cmd := &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Replay an interaction scenario against a GUI",
		Long:  "simulate opens the scenario's GUI in an in-process host, plays every step through the validation engine and checks the expectations. Balances and pages live in a scratch directory unless --persist is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if s.Name == "" {
				s.Name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			funds, store := app.ledger, app.pages
			if !persist {
				scratch, err := os.MkdirTemp("", "slotguard-sim-*")
				if err != nil {
					return fmt.Errorf("create scratch directory: %w", err)
				}
				defer func() { _ = os.RemoveAll(scratch) }()

				funds, err = ledger.NewLedger(filepath.Join(scratch, "ledger.toml"))
				if err != nil {
					return err
				}
				store = pages.NewStore(filepath.Join(scratch, "pages"), app.catalogue)
			}

			sim, err := app.newSimulation(funds, store)
			if err != nil {
				return err
			}

			report, err := scenario.Run(cmd.Context(), scenario.Env{
				Host:    sim.host,
				Items:   app.items,
				Funds:   funds,
				Size:    app.guiSize,
				Invoked: sim.invoked,
			}, s)
			if err != nil {
				return fmt.Errorf("run scenario %q: %w", s.Name, err)
			}

			out := cmd.OutOrStdout()
			if err := writeReport(out, report); err != nil {
				return err
			}

			gui, err := app.catalogue.Get(s.Gui)
			if err != nil {
				return err
			}
			snap := snapshotOf(gui, report.Session.Container)
			snap.Cursor, _ = sim.host.Cursor(s.User)
			if balance, err := funds.Balance(cmd.Context(), s.User); err == nil {
				snap.Balance = &balance
			}
			for _, step := range report.Steps {
				snap.Notices = append(snap.Notices, step.Notices...)
				if step.Outcome.Rejected() {
					snap.Rejections = append(snap.Rejections, fmt.Sprintf("step %d: %v", step.Index, step.Outcome.Rejection))
				}
			}

			rendered, err := app.render(snap)
			if err != nil {
				return fmt.Errorf("render container: %w", err)
			}
			if _, err := fmt.Fprintln(out, rendered); err != nil {
				return err
			}

			if !report.Passed() {
				return fmt.Errorf("scenario %q failed", s.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "Use the configured ledger and page store instead of a scratch copy")
	return cmd
}

func writeReport(w io.Writer, report scenario.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", report.Scenario)
	for _, step := range report.Steps {
		mark := "ok"
		if len(step.Failures) > 0 {
			mark = "FAIL"
		}
		fmt.Fprintf(&b, "  %-4s %2d. %s\n", mark, step.Index, step.Description)
		for _, failure := range step.Failures {
			fmt.Fprintf(&b, "         - %s\n", failure)
		}
	}
	for _, failure := range report.Failures {
		fmt.Fprintf(&b, "  FAIL final: %s\n", failure)
	}

	result := "passed"
	if !report.Passed() {
		result = "failed"
	}
	fmt.Fprintf(&b, "result: %s\n", result)

	_, err := io.WriteString(w, b.String())
	return err
}
