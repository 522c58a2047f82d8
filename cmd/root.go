// Package cmd contains all CLI commands for skinctl
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anirudh-why/SmartSkin/internal/api"
	"github.com/anirudh-why/SmartSkin/internal/config"
	"github.com/anirudh-why/SmartSkin/internal/output"
	"github.com/anirudh-why/SmartSkin/internal/session"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	apiURL    string
	colorMode string
	cfg       *config.Config
	logger    *slog.Logger
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skinctl",
	Short: "SmartSkin skincare CLI",
	Long: `skinctl is a command-line client for the SmartSkin skincare platform.

It talks to the SmartSkin API for product recommendations, ingredient
analysis, and routine building, and runs the skin-type assessment quiz
locally.

Example usage:
  skinctl login                # Authenticate against the API
  skinctl assess               # Take the skin-type quiz
  skinctl recommend            # Get product recommendations
  skinctl analyze ingredients "aqua, glycerin, niacinamide"
  skinctl routine suggest      # Build a personalized routine`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .skinctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "SmartSkin API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, or never")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error

	// Setup logger
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err = config.Load(cfgFile, apiURL)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Update logger based on config
	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger.Debug("configuration loaded",
		"api_base_url", cfg.API.BaseURL,
		"token_file", cfg.Auth.TokenFile,
	)

	return nil
}

// newPrinter builds a printer from the global flags and config.
func newPrinter() *output.Printer {
	mode, err := output.ParseColorMode(colorMode)
	if err != nil {
		mode = output.ColorAuto
	}
	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg.Output.Colors,
		Quiet:        quiet,
	})
}

// newAPIClient creates an unauthenticated API client.
func newAPIClient() *api.Client {
	return api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
}

// newSession wires a session store onto a fresh API client. No network
// traffic happens until Bootstrap or an explicit auth operation.
func newSession() (*session.Store, *api.Client) {
	client := newAPIClient()
	creds := session.NewCredentialFile(cfg.Auth.TokenFile)
	return session.New(client, creds, logger), client
}

// openSession runs the silent startup verification and returns the
// store. Callers that require authentication use requireAuth instead.
func openSession(ctx context.Context) (*session.Store, *api.Client) {
	store, client := newSession()
	store.Bootstrap(ctx)
	return store, client
}

// requireAuth opens a session and rejects locally when no identity is
// present, without another network round trip.
func requireAuth(ctx context.Context) (*session.Store, *api.Client, error) {
	store, client := openSession(ctx)
	if !store.Authenticated() {
		return nil, nil, &output.CLIError{
			Summary:    "not logged in",
			Suggestion: "Run 'skinctl login' or 'skinctl register' first",
			ExitCode:   output.ExitAuthError,
		}
	}
	return store, client, nil
}
