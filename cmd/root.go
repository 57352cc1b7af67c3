package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slotguard",
		Short:         "slotguard: validate and simulate managed GUI containers",
		Long:          "slotguard checks GUI slot catalogues, keeps player balances and enderlink pages, and replays interaction scenarios against the slot validation engine.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newGuiCmd(app),
		newSimulateCmd(app),
		newLedgerCmd(app),
		newPagesCmd(app),
	)

	return rootCmd
}
