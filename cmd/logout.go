package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Long: `Remove the persisted credential and forget the current identity.

Logout is purely local and always succeeds; no network call is made.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	store, _ := newSession()
	if err := store.Logout(); err != nil {
		return err
	}

	printer.Success("Logged out")
	printer.PrintHints("logout")
	return nil
}
