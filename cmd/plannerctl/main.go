package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag  string
	userFlag string
	rootCmd  = &cobra.Command{
		Use:   "plannerctl",
		Short: "CLI client for the planner REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Planner service base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID")

	analyticsCmd := &cobra.Command{
		Use:   "analytics [summary|daily|distribution|heatmap|peak-hours|reviews]",
		Short: "Fetch analytics for a user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			report := "summary"
			if len(args) == 1 {
				report = args[0]
			}
			return runAnalytics(apiFlag, userFlag, report, os.Stdout)
		},
	}
	rootCmd.AddCommand(analyticsCmd)

	scheduleCmd := &cobra.Command{
		Use:   "schedule <date>",
		Short: "Show a user's schedule for a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runSchedule(apiFlag, userFlag, args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(scheduleCmd)

	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show a user's notification preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runGetPrefs(apiFlag, userFlag, os.Stdout)
		},
	}
	setPrefsCmd := &cobra.Command{
		Use:   "set",
		Short: "Update notification preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			enabled, _ := cmd.Flags().GetBool("enabled")
			lead, _ := cmd.Flags().GetInt("lead")
			return runSetPrefs(apiFlag, userFlag, enabled, lead, os.Stdout)
		},
	}
	setPrefsCmd.Flags().Bool("enabled", true, "Enable block reminders")
	setPrefsCmd.Flags().Int("lead", 5, "Reminder lead time in minutes")
	prefsCmd.AddCommand(setPrefsCmd)
	rootCmd.AddCommand(prefsCmd)

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
