package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage data backups",
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		names, err := app.Backups.List()
		if err != nil {
			fatal("backup list: %v", err)
		}
		if len(names) == 0 {
			fmt.Println("No backups")
			return
		}
		for _, n := range names {
			fmt.Println(n)
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Replace the current data with a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()

		data, err := app.Backups.Restore(args[0])
		if err != nil {
			fatal("backup restore: %v", err)
		}
		app.Store.PutData(data)
		if err := app.Store.Save(); err != nil {
			fatal("backup restore: %v", err)
		}
		fmt.Printf("Restored %s: %d projects, %d sessions\n", args[0], len(data.Projects), len(data.Sessions))
	},
}

func init() {
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}
