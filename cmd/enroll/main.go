// Enroll is a student course-registration client.
//
// It collects a student's name, age, email, and course choice, validates
// the fields, and forwards the registration to a form-submission endpoint,
// keeping an in-memory list of students registered during the session.
//
// Usage:
//
//	enroll [command] [flags]
//
// Running without arguments launches the interactive registration form.
// See 'enroll --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/enroll/internal/logging"
	"github.com/mwhitfield/enroll/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Student Course Registration",
	Long: `A terminal client for registering students onto courses.

Collects name, age, email, and course choice, validates them, and submits
the registration to the configured form endpoint. Successful registrations
are listed for the duration of the session.

If no command is specified, the interactive registration form will launch.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the interactive form when no subcommand provided
		return runForm(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("enroll %s (commit: %s)\n", version.Version, version.Commit)
	},
}
