package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipcheck/shipcheck/internal/config"
)

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage shipcheck configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample config file",
	Long: `Write a commented sample configuration to ~/.shipcheck.yaml.

Fails if the file already exists.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ConfigPath()

	if _, err := os.Stat(path); err == nil {
		return &InvalidInputError{Message: fmt.Sprintf("config already exists: %s", path)}
	}

	if err := os.WriteFile(path, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
