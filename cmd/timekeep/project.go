package main

import (
	"fmt"
	"timekeep/internal/models"

	"github.com/spf13/cobra"
)

var (
	projectName  string
	projectColor string
	projectIcon  string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		for _, p := range app.Store.Projects() {
			fmt.Printf("%-20s %-8s %-12s %s\n", p.Name, p.Color, p.IconOrDefault(), p.ID)
		}
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		color := projectColor
		if color == "" {
			color = "#5f8eed"
		}
		p, err := app.Store.AddProject(models.Project{
			Name:  args[0],
			Color: color,
			Icon:  projectIcon,
		})
		if err != nil {
			fatal("project add: %v", err)
		}
		fmt.Printf("Created %s (%s)\n", p.Name, p.ID)
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <project>",
	Short: "Change a project's name, color or icon",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		p := resolveProject(app, args[0])

		var upd models.ProjectUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &projectName
		}
		if cmd.Flags().Changed("color") {
			upd.Color = &projectColor
		}
		if cmd.Flags().Changed("icon") {
			upd.Icon = &projectIcon
		}
		if err := app.Store.UpdateProject(p.ID, upd); err != nil {
			fatal("project edit: %v", err)
		}
		fmt.Println("Updated")
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project>",
	Short: "Delete a project and all its sessions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		defer app.Close()
		p := resolveProject(app, args[0])

		// The store itself is permissive; the host keeps at least one
		// project around.
		if len(app.Store.Projects()) == 1 {
			fatal("cannot delete the last project")
		}
		if state := app.Timer.State(); state.Running() && state.ProjectID == p.ID {
			fatal("stop or discard the running timer first")
		}
		if err := app.Store.DeleteProject(p.ID); err != nil {
			fatal("project delete: %v", err)
		}
		fmt.Printf("Deleted %s\n", p.Name)
	},
}

func init() {
	for _, c := range []*cobra.Command{projectAddCmd, projectEditCmd} {
		c.Flags().StringVar(&projectName, "name", "", "Display name")
		c.Flags().StringVar(&projectColor, "color", "", "Display color, e.g. #5f8eed")
		c.Flags().StringVar(&projectIcon, "icon", "", "Icon name")
	}
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
