package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/output"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Password reset operations",
	Long: `Request a password reset and confirm it with the emailed token.

Examples:
  skinctl reset request a@b.com
  skinctl reset confirm --token <token>`,
}

var resetRequestCmd = &cobra.Command{
	Use:   "request <email>",
	Short: "Request password reset instructions",
	Args:  cobra.ExactArgs(1),
	RunE:  runResetRequest,
}

var resetConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Set a new password with a reset token",
	RunE:  runResetConfirm,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.AddCommand(resetRequestCmd)
	resetCmd.AddCommand(resetConfirmCmd)

	resetConfirmCmd.Flags().String("token", "", "reset token from the email")
	resetConfirmCmd.Flags().String("password", "", "new password (prompted when omitted)")
}

func runResetRequest(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	client := newAPIClient()

	if err := client.RequestPasswordReset(context.Background(), args[0]); err != nil {
		return &output.CLIError{
			Summary:  "reset request failed",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Reset instructions sent to %s", args[0])
	return nil
}

func runResetConfirm(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		return &output.CLIError{
			Summary:    "reset token is required",
			Suggestion: "Pass the token from the reset email with --token",
			ExitCode:   output.ExitUsageError,
		}
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = readPassword(cmd, "New password")
		if err != nil {
			return err
		}
		confirm, err := readPassword(cmd, "Confirm new password")
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

	client := newAPIClient()
	if err := client.ResetPassword(context.Background(), token, password); err != nil {
		return &output.CLIError{
			Summary:  "password reset failed",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Password updated, you can log in now")
	return nil
}
