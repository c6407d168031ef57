package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "timekeep",
	Short: "Personal time tracker",
	Long:  `Track time against named projects and report daily, weekly and monthly totals, per-project breakdowns and streaks.`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", defaultConfigPath(), "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log to stderr as well as the log file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(discardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(backupCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
