package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Manage test runs",
	}

	cmd.AddCommand(newRunsListCmd())
	cmd.AddCommand(newRunsGetCmd())
	cmd.AddCommand(newRunsCreateCmd())
	cmd.AddCommand(newRunsDeleteCmd())
	cmd.AddCommand(newRunsSummarizeCmd())
	return cmd
}

func runHeaders() []string {
	return []string{"ID", "NAME", "DATE", "EXECUTED BY", "PASSED", "FAILED", "BLOCKED", "NOT RUN", "TOTAL"}
}

func runRow(r testrun.TestRun) []string {
	return []string{
		r.ID,
		r.Name,
		r.Date,
		r.ExecutedBy,
		strconv.Itoa(r.Passed),
		strconv.Itoa(r.Failed),
		strconv.Itoa(r.Blocked),
		strconv.Itoa(r.NotRun),
		strconv.Itoa(r.TotalTests),
	}
}

func newRunsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List test runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Get("/api/v1/runs", nil)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var resp ListResponse[testrun.TestRun]
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			var rows [][]string
			for _, r := range resp.Items {
				rows = append(rows, runRow(r))
			}
			printTable(runHeaders(), rows)
			return nil
		},
	}
}

func newRunsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <run-id>",
		Short: "Show a single test run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Get("/api/v1/runs/"+args[0], nil)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var r testrun.TestRun
			if err := json.Unmarshal(body, &r); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			printTable(runHeaders(), [][]string{runRow(r)})
			return nil
		},
	}
}

func newRunsCreateCmd() *cobra.Command {
	var executedBy string

	cmd := &cobra.Command{
		Use:   "create <project-name>",
		Short: "Start a new batch run snapshotting a project's test cases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			payload := map[string]interface{}{}
			if executedBy != "" {
				payload["executed_by"] = executedBy
			}

			body, err := client.Post("/api/v1/projects/"+url.PathEscape(args[0])+"/batches", payload)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var r testrun.TestRun
			if err := json.Unmarshal(body, &r); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			printMessage(fmt.Sprintf("Run %s created with %d test cases", r.ID, r.TotalTests))
			return nil
		},
	}

	cmd.Flags().StringVar(&executedBy, "executed-by", "", "Name recorded as the run's executor")
	return cmd
}

func newRunsDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a test run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Delete run %s?", args[0]), skipConfirm) {
				printMessage("Aborted")
				return nil
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			if _, err := client.Delete("/api/v1/runs/" + args[0]); err != nil {
				return err
			}

			printMessage(fmt.Sprintf("Run %s deleted", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func newRunsSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <run-id>",
		Short: "Request an AI-written summary of a run's results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Post("/api/v1/runs/"+args[0]+"/summarize", nil)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var resp SummarizeRunResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			fmt.Println(resp.Summary)
			return nil
		},
	}
}
