package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/everydayventures/website/internal/client"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send an inquiry to a contact endpoint",
	Long: `Send one inquiry to a running contact endpoint, the same way the site form does.

Example:
  evsite submit --name Jo --email jo@example.com --project "Need a logo"
  evsite submit --endpoint https://everydayventures.com/api/contact --name Jo ...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		inquiry := client.Inquiry{}
		inquiry.Name, _ = cmd.Flags().GetString("name")
		inquiry.Email, _ = cmd.Flags().GetString("email")
		inquiry.Project, _ = cmd.Flags().GetString("project")
		inquiry.Company, _ = cmd.Flags().GetString("company")

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " " + client.StatusSending
		s.Writer = cmd.ErrOrStderr()
		s.Start()
		result, err := client.NewSubmitter(endpoint, nil).Submit(ctx, inquiry)
		s.Stop()

		out := cmd.OutOrStdout()
		if errors.Is(err, client.ErrInvalidInquiry) {
			printFieldErrors(cmd, result.FieldErrors)
			return err
		}
		if err != nil {
			return err
		}

		if !result.Success {
			fmt.Fprintf(out, "%s (HTTP %d)\n", result.Message, result.StatusCode)
			printFieldErrors(cmd, result.FieldErrors)
			return fmt.Errorf("submission rejected with status %d", result.StatusCode)
		}

		fmt.Fprintln(out, result.Message)
		return nil
	},
}

func printFieldErrors(cmd *cobra.Command, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", name, fields[name])
	}
}

func initSubmitFlags() {
	submitCmd.Flags().String("endpoint", "http://localhost:8080/api/contact", "Contact endpoint URL")
	submitCmd.Flags().Duration("timeout", 30*time.Second, "Give up after this long")
	submitCmd.Flags().String("name", "", "Your name")
	submitCmd.Flags().String("email", "", "Your email address")
	submitCmd.Flags().String("project", "", "Project details")
	submitCmd.Flags().String("company", "", "Honeypot field, leave empty")
	_ = submitCmd.Flags().MarkHidden("company")
}
