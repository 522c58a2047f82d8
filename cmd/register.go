package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/output"
)

// minPasswordLength mirrors the backend's password policy.
const minPasswordLength = 8

var registerCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create a SmartSkin account",
	Long: `Register a new SmartSkin account and log in.

The password is prompted twice without echo unless --password is given.

Examples:
  skinctl register a@b.com --name "Ada"
  skinctl register --email a@b.com --name "Ada"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("password", "", "account password (prompted when omitted)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	email, _ := cmd.Flags().GetString("email")
	if len(args) > 0 {
		email = args[0]
	}
	name, _ := cmd.Flags().GetString("name")

	if email == "" || name == "" {
		return &output.CLIError{
			Summary:    "email and name are required",
			Suggestion: "skinctl register a@b.com --name \"Your Name\"",
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
		confirm, err := readPassword(cmd, "Confirm password")
		if err != nil {
			return err
		}
		if password != confirm {
			return &output.CLIError{
				Summary:  "passwords do not match",
				ExitCode: output.ExitUsageError,
			}
		}
	}
	if len(password) < minPasswordLength {
		return &output.CLIError{
			Summary:  "password too short",
			Detail:   "must be at least 8 characters",
			ExitCode: output.ExitUsageError,
		}
	}

	store, _ := newSession()
	if err := store.Register(context.Background(), email, password, name); err != nil {
		return &output.CLIError{
			Summary:  "registration failed",
			Detail:   err.Error(),
			ExitCode: output.ExitAuthError,
		}
	}

	printer.Success("Account created, logged in as %s", printer.Bold(name))
	printer.PrintHints("register")
	return nil
}
