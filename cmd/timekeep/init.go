package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configTemplate = `persistence:
  dataFile: %[1]s/time-data.json
  settingsFile: %[1]s/settings.json
backup:
  dir: %[1]s/backups
  keep: 10
logger:
  level: info
  mode: 420
  dir: %[1]s/logs
cache:
  enabled: true
  size: 8
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file and data directory",
	Run:   runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	if _, err := os.Stat(flagConfig); err == nil {
		fatal("config already exists at %s", flagConfig)
	}

	dir := filepath.Dir(flagConfig)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fatal("cannot create %s: %v", dir, err)
	}
	content := fmt.Sprintf(configTemplate, dir)
	if err := os.WriteFile(flagConfig, []byte(content), 0o644); err != nil {
		fatal("cannot write %s: %v", flagConfig, err)
	}
	fmt.Printf("Wrote %s\n", flagConfig)
}
