package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/fix"
)

var (
	// Fix command flags
	fixPath  string
	fixApply bool
)

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Generate fixes for check findings",
	Long: `Run all checks, then propose remediations for what they found.

By default nothing is written: file fixes are previewed and the rest
are printed as suggestions. With --apply, missing files such as
.env.example and README.md are created from templates. Existing files
are never touched.

Example:
  shipcheck fix --path ./my-api
  shipcheck fix --path ./my-api --apply`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().StringVarP(&fixPath, "path", "p", ".", "project directory to fix")
	fixCmd.Flags().BoolVar(&fixApply, "apply", false, "write generated files")
}

func runFix(cmd *cobra.Command, args []string) error {
	target, err := newTarget(fixPath)
	if err != nil {
		return err
	}

	logVerbose("Checking %s", target.Root)
	report := aggregate.Run(target, nil)

	actions := fix.Plan(report, target.Root)
	logDebug("%d actions planned", len(actions))

	if len(actions) > 0 {
		mode := "dry run, use --apply to write files"
		if fixApply {
			mode = "applying"
		}
		fmt.Printf("%d fixes (%s):\n", len(actions), mode)
	}

	return fix.Apply(actions, fixApply, os.Stdout)
}
