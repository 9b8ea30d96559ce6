package main

import (
	"fmt"
	"os"

	"taskflow/cmd/server/commands"

	"github.com/spf13/cobra"
)

// @title           TaskFlow API
// @version         1.0
// @description     Team task management: tasks, time tracking, activity feed and reports.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name taskflow.sid

// @schemes http
func main() {
	rootCmd := &cobra.Command{
		Use:          "taskflow",
		Short:        "TaskFlow API server",
		Long:         "TaskFlow manages team tasks, time tracking and activity, and serves reports over them.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewClearAllCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewSessionsCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
