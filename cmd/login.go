package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/output"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Authenticate against the SmartSkin API",
	Long: `Log in with your SmartSkin account and persist the session token.

The password is prompted without echo unless --password is given.

Examples:
  skinctl login a@b.com
  skinctl login --email a@b.com
  skinctl login a@b.com --password secret   # for scripts only`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	email, _ := cmd.Flags().GetString("email")
	if len(args) > 0 {
		email = args[0]
	}
	if email == "" {
		return &output.CLIError{
			Summary:    "email is required",
			Suggestion: "Pass it as an argument: skinctl login a@b.com",
			ExitCode:   output.ExitUsageError,
		}
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = readPassword(cmd, "Password")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return &output.CLIError{
			Summary:  "password must not be empty",
			ExitCode: output.ExitUsageError,
		}
	}

	store, _ := newSession()
	if err := store.Login(context.Background(), email, password); err != nil {
		return &output.CLIError{
			Summary:  "login failed",
			Detail:   err.Error(),
			ExitCode: output.ExitAuthError,
		}
	}

	name := email
	if identity := store.Identity(); identity != nil && identity.Name != "" {
		name = identity.Name
	}
	printer.Success("Logged in as %s", printer.Bold(name))
	printer.PrintHints("login")
	return nil
}
