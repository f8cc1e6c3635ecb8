package main

import (
	"encoding/json"
	"fmt"

	"github.com/hairizuanbinnoorazman/qa-dashboard/execution"
	"github.com/spf13/cobra"
)

func newExecutionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "executions",
		Short: "View and record test case executions",
	}

	cmd.AddCommand(newExecutionsListCmd())
	cmd.AddCommand(newExecutionsPassCmd())
	cmd.AddCommand(newExecutionsFailCmd())
	return cmd
}

func newExecutionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all executions across runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Get("/api/v1/executions", nil)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var resp ListResponse[execution.Execution]
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			headers := []string{"ID", "PROJECT", "BATCH", "TEST CASE", "TITLE", "STATUS"}
			var rows [][]string
			for _, e := range resp.Items {
				rows = append(rows, []string{
					e.ID,
					e.Project,
					e.BatchNumber,
					e.TestCaseID,
					e.Title,
					string(e.Status),
				})
			}
			printTable(headers, rows)
			return nil
		},
	}
}

func newExecutionsPassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <execution-id>",
		Short: "Mark an execution as passed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			if _, err := client.Post("/api/v1/executions/"+args[0]+"/pass", nil); err != nil {
				return err
			}

			printMessage(fmt.Sprintf("Execution %s marked as passed", args[0]))
			return nil
		},
	}
}

func newExecutionsFailCmd() *cobra.Command {
	var description string
	var issueNumber int
	var githubStatus string

	cmd := &cobra.Command{
		Use:   "fail <execution-id>",
		Short: "Mark an execution as failed with failure details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			payload := map[string]interface{}{
				"description": description,
			}
			if issueNumber != 0 {
				payload["issue_number"] = issueNumber
			}
			if githubStatus != "" {
				payload["github_status"] = githubStatus
			}

			if _, err := client.Post("/api/v1/executions/"+args[0]+"/fail", payload); err != nil {
				return err
			}

			printMessage(fmt.Sprintf("Execution %s marked as failed", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Failure description (required)")
	cmd.Flags().IntVar(&issueNumber, "issue-number", 0, "Linked issue number")
	cmd.Flags().StringVar(&githubStatus, "github-status", "", "Linked issue status (Open, Closed, In Progress)")
	cmd.MarkFlagRequired("description")
	return cmd
}
