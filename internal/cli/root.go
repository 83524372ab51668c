package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipcheck/shipcheck/internal/config"
)

const (
	// Exit codes
	ExitOK           = 0 // Success, project is ready
	ExitCheckFail    = 1 // One or more checks failed or a policy was violated
	ExitInvalidInput = 2 // Bad flags, unknown module, or unreadable project
	ExitRuntimeError = 3 // I/O, permissions, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	verbose    bool
	debug      bool
)

var buildVersion = "dev"

// SetVersion records the version injected at build time.
func SetVersion(v string) {
	if v != "" {
		buildVersion = v
	}
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shipcheck",
	Short: "Shipcheck - static backend readiness checker",
	Long: `Shipcheck inspects a Node.js backend project directory and reports
whether it looks ready to deploy. All analysis is static: files are read
and pattern-matched, nothing is executed or installed.

Seven check modules cover environment config, authentication, API
conventions, project hygiene, security posture, dependencies, and
database usage.

Quick start:
  shipcheck report --path ./my-api
  shipcheck env --path ./my-api
  shipcheck fix --path ./my-api --apply

Other commands:
  shipcheck report --json
  shipcheck report --interactive
  shipcheck config init`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags if provided
		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(exitCode(err))
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/.shipcheck.yaml or ./shipcheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	// Add subcommands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	for _, c := range moduleCmds() {
		rootCmd.AddCommand(c)
	}
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Shipcheck %s\n", buildVersion)
		fmt.Println("Static backend readiness checker")
	},
}

// exitCode determines the appropriate exit code for an error
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var checkErr *CheckFailedError
	if errors.As(err, &checkErr) {
		return ExitCheckFail
	}
	var inputErr *InvalidInputError
	if errors.As(err, &inputErr) {
		return ExitInvalidInput
	}
	return ExitRuntimeError
}

// CheckFailedError signals a NOT_READY verdict or a policy violation.
type CheckFailedError struct {
	Message string
}

func (e *CheckFailedError) Error() string {
	return e.Message
}

// InvalidInputError represents bad user input
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
