package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/policy"
	"github.com/shipcheck/shipcheck/internal/reporter"
	"github.com/shipcheck/shipcheck/internal/tui"
)

var (
	// Report command flags
	reportPath        string
	reportJSON        bool
	reportSkip        []string
	reportInteractive bool
	reportOutput      string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run all checks and produce a readiness verdict",
	Long: `Run every check module against a project directory and print the
combined READY or NOT_READY verdict. With --json or --output, a JSON
report file is written into the project directory alongside the
console output.

A .shipcheck-policy.yaml file in the project (or any parent directory)
adds pass/fail rules on top of the verdict.

Exit 0 when ready, exit 1 when not.

Example:
  shipcheck report --path ./my-api
  shipcheck report --json
  shipcheck report --skip database --skip project
  shipcheck report --interactive`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportPath, "path", "p", ".",
		"project directory to check")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false,
		"print the report as JSON instead of text")
	reportCmd.Flags().StringSliceVar(&reportSkip, "skip", nil,
		"module to exclude (repeatable)")
	reportCmd.Flags().BoolVarP(&reportInteractive, "interactive", "i", false,
		"browse findings in an interactive TUI")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "",
		"JSON report file name (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	target, err := newTarget(reportPath)
	if err != nil {
		return err
	}

	skip, err := skipSet(reportSkip)
	if err != nil {
		return err
	}

	logVerbose("Checking %s", target.Root)
	report := aggregate.Run(target, skip)
	logDebug("%d modules run, %d issues, %d warnings",
		len(report.Results), report.TotalIssues, report.TotalWarnings)

	// Console output
	switch {
	case reportInteractive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return &InvalidInputError{Message: "interactive mode needs a terminal"}
		}
		if err := tui.Run(report); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
	case reportJSON || cfg.Format == "json":
		if err := reporter.NewJSONReporter(os.Stdout).Generate(report); err != nil {
			return err
		}
	default:
		if err := reporter.NewTextReporter(os.Stdout, cfg.Verbose).Generate(report); err != nil {
			return err
		}
	}

	// JSON report file, written only when asked for: --json, --output, or a
	// json/both format in config. A plain report run leaves the project
	// untouched.
	if reportJSON || reportOutput != "" || cfg.Format == "json" || cfg.Format == "both" {
		outFile := reportOutput
		if outFile == "" {
			outFile = cfg.ReportFile
		}
		if err := report.WriteJSON(target.Join(outFile)); err != nil {
			return fmt.Errorf("write report file: %w", err)
		}
		logVerbose("Report written to %s", outFile)
	}

	// Policy evaluation on top of the verdict
	if path := policy.FindPolicyFile(target.Root); path != "" {
		pol, err := policy.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		if result := pol.Evaluate(report); !result.Pass {
			for _, v := range result.Violations {
				logError("policy %s: %s", v.Rule, v.Message)
			}
			return &CheckFailedError{Message: "policy violations found"}
		}
		logVerbose("Policy %s passed", path)
	}

	if !report.OverallPassed {
		return &CheckFailedError{Message: "project is not ready to ship"}
	}
	return nil
}

// skipSet resolves skip flags and config against known module names.
func skipSet(flags []string) (map[string]bool, error) {
	names := flags
	if len(names) == 0 && cfg != nil {
		names = cfg.Skip
	}

	skip := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "deps" {
			name = "dependencies"
		}
		if !aggregate.IsModule(name) {
			return nil, &InvalidInputError{
				Message: fmt.Sprintf("unknown module %q, expected one of: %s",
					name, strings.Join(aggregate.ModuleNames(), ", ")),
			}
		}
		skip[name] = true
	}
	return skip, nil
}
