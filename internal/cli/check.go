package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipcheck/shipcheck/internal/aggregate"
	"github.com/shipcheck/shipcheck/internal/checks"
	"github.com/shipcheck/shipcheck/internal/facts"
	"github.com/shipcheck/shipcheck/internal/reporter"
)

var checkPath string

// Short command names for modules whose full name is a mouthful.
var moduleAliases = map[string]string{
	"dependencies": "deps",
}

var moduleShort = map[string]string{
	"env":          "Check .env files, secrets, and variable documentation",
	"auth":         "Check auth middleware on sensitive routes and JWT expiry",
	"api":          "Check health endpoints and REST route conventions",
	"project":      "Check README, project layout, and error handling",
	"security":     "Check CORS, security headers, rate limiting, and eval usage",
	"dependencies": "Check package.json, lock file, and security packages",
	"database":     "Check database connection handling and migrations",
}

// moduleCmds builds one subcommand per check module.
func moduleCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(aggregate.Modules))
	for _, mod := range aggregate.Modules {
		mod := mod
		use := mod.Name
		if alias, ok := moduleAliases[mod.Name]; ok {
			use = alias
		}

		c := &cobra.Command{
			Use:   use,
			Short: moduleShort[mod.Name],
			Long: fmt.Sprintf(`Run only the %s module against a project directory.

Exit 0 when the module passes, exit 1 when it finds issues.

Example:
  shipcheck %s --path ./my-api`, mod.Name, use),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runModule(mod)
			},
		}
		c.Flags().StringVarP(&checkPath, "path", "p", ".", "project directory to check")
		cmds = append(cmds, c)
	}
	return cmds
}

func runModule(mod aggregate.Module) error {
	target, err := newTarget(checkPath)
	if err != nil {
		return err
	}

	logVerbose("Running %s checks on %s", mod.Name, target.Root)
	result := mod.Run(target)
	logDebug("%s: %d findings", mod.Name, len(result.Findings))

	text := reporter.NewTextReporter(os.Stdout, true)
	if err := text.Section(result); err != nil {
		return err
	}

	if !result.Passed {
		return &CheckFailedError{Message: fmt.Sprintf("%s check failed", mod.Name)}
	}
	return nil
}

// newTarget validates the project path and applies the configured file cap.
func newTarget(dir string) (checks.Target, error) {
	if !facts.DirExists(dir) {
		return checks.Target{}, &InvalidInputError{
			Message: fmt.Sprintf("not a directory: %s", dir),
		}
	}

	target := checks.NewTarget(dir)
	if cfg != nil && cfg.FileCap > 0 {
		target.FileCap = cfg.FileCap
	}
	return target, nil
}
