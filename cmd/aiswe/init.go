package main

import (
	"fmt"
	"os"
	"path/filepath"

	"aiswe/internal/config"

	"github.com/spf13/cobra"
)

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize aiswe configuration",
	Long:  "Creates a .aiswe/ directory with default configuration in the current directory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Force reinitialization (removes existing .aiswe directory)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := newLogger(formatFlag)

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	configPath, created, err := initWorkspace(root, initForce)
	if err != nil {
		return err
	}
	if !created {
		// Idempotent behavior: already initialized is success.
		fmt.Println("aiswe already initialized.")
		fmt.Printf("Configuration at: %s\n", configPath)
		fmt.Println("\nRun 'aiswe init --force' to reinitialize.")
		return nil
	}

	logger.Info("aiswe initialized", map[string]interface{}{
		"config_path": configPath,
	})

	fmt.Println("aiswe initialized successfully!")
	fmt.Printf("Configuration written to: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run 'aiswe benchmark' for a catalog overview")
	fmt.Println("  2. Run 'aiswe readiness' for the aggregate grade")

	return nil
}

// initWorkspace writes a default config under <root>/.aiswe. When the
// directory already exists it is left untouched unless force is set.
func initWorkspace(root string, force bool) (configPath string, created bool, err error) {
	dir := filepath.Join(root, ".aiswe")
	configPath = filepath.Join(dir, "config.json")

	if _, statErr := os.Stat(dir); statErr == nil {
		if !force {
			return configPath, false, nil
		}
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			return "", false, fmt.Errorf("failed to remove existing .aiswe directory: %w", removeErr)
		}
	}

	if mkdirErr := os.MkdirAll(dir, 0755); mkdirErr != nil {
		return "", false, fmt.Errorf("failed to create .aiswe directory: %w", mkdirErr)
	}

	cfg := config.DefaultConfig()
	if saveErr := cfg.Save(root); saveErr != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", saveErr)
	}

	return configPath, true, nil
}
