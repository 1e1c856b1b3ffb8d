package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/enroll/internal/config"
	"github.com/mwhitfield/enroll/internal/registration"
	"github.com/mwhitfield/enroll/internal/tui"
	"github.com/mwhitfield/enroll/internal/ui"
)

// Configuration flags (persistent on root)
var (
	endpointURL string
	timeoutSecs int
	configPath  string
)

// submit command flags
var (
	studentName   string
	studentAge    string
	studentEmail  string
	studentCourse string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointURL, "endpoint", "", "Form submission endpoint URL (overrides config file)")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", -1, "Request timeout in seconds, 0 for none (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/enroll/config.yaml)")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(coursesCmd)
}

// buildClient assembles the submission client from the config file and
// flag overrides.
func buildClient() (*registration.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if endpointURL != "" {
		cfg.Endpoint = endpointURL
	}
	if timeoutSecs >= 0 {
		cfg.TimeoutSeconds = timeoutSecs
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := registration.NewClient(cfg.Endpoint)
	client.SetTimeout(cfg.Timeout())
	return client, nil
}

// formCmd launches the interactive registration form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Launch the interactive registration form",
	Long: `Launch the interactive registration form.

The form validates each field as you edit it and submits the registration
to the configured endpoint. Students registered during the session are
listed below the form. This is also the default when enroll is run with
no command.`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}

	// The registry lives exactly as long as the form that owns it
	registry := registration.NewRegistry()
	return tui.Run(client, registry)
}

// submitCmd performs a one-shot registration from flags
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit one registration without the interactive form",
	Long: `Validate and submit a single registration from command-line flags.

The same validation rules apply as in the interactive form: name at least
2 characters, age between 16 and 100, a well-formed email address, and one
of the six course codes (see 'enroll courses').`,
	Example: `  # Register a student
  enroll submit --name "Jo Larsen" --age 20 --email jo@example.com --course physics

  # Submit to a different endpoint
  enroll submit --endpoint https://forms.internal.example/f/reg \
    --name "Jo Larsen" --age 20 --email jo@example.com --course physics`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&studentName, "name", "", "Student name (min 2 characters)")
	submitCmd.Flags().StringVar(&studentAge, "age", "", "Student age (16-100)")
	submitCmd.Flags().StringVar(&studentEmail, "email", "", "Student email address")
	submitCmd.Flags().StringVar(&studentCourse, "course", "", "Course code (see 'enroll courses')")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	candidate := registration.Candidate{
		Name:   studentName,
		Age:    studentAge,
		Email:  studentEmail,
		Course: studentCourse,
	}

	rec, fieldErrs := registration.Validate(candidate)
	if len(fieldErrs) > 0 {
		// Stable field order for the failure box
		var hints []string
		for _, field := range []string{
			registration.FieldName,
			registration.FieldAge,
			registration.FieldEmail,
			registration.FieldCourse,
		} {
			if fieldErr, ok := fieldErrs[field]; ok {
				hints = append(hints, fmt.Sprintf("%s: %s", field, fieldErr.Message))
			}
		}
		result := ui.NewFailureResult("Registration not submitted", errors.New("one or more fields are invalid"), hints)
		fmt.Println(result.Render())
		return errors.New("validation failed")
	}

	client, err := buildClient()
	if err != nil {
		return err
	}

	fmt.Printf("Submitting registration to %s...\n\n", client.Endpoint)

	if err := client.Submit(rec); err != nil {
		result := ui.NewFailureResult("Registration failed", err, []string{
			registration.ShortMessage(err),
			"Your input was not lost - re-run the same command to retry",
		})
		fmt.Println(result.Render())
		return errors.New("submission failed")
	}

	result := ui.NewSuccessResult("Registration accepted").
		AddDetail("Name", rec.Name).
		AddDetail("Age", strconv.Itoa(rec.Age)).
		AddDetail("Email", rec.Email).
		AddDetail("Course", rec.Course.Label())
	fmt.Println(result.Render())

	return nil
}

// coursesCmd lists the course catalog
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List available course codes",
	Long:  `List the course codes accepted by the registration form and their display labels.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available courses:")
		fmt.Println()
		for _, course := range registration.Courses() {
			fmt.Printf("  %-18s %s\n", course, course.Label())
		}
		fmt.Println()
		fmt.Println("Use the left-hand code with 'enroll submit --course <code>'")
	},
}
