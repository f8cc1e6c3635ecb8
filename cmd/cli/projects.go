package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/spf13/cobra"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage test case projects",
	}

	cmd.AddCommand(newProjectsListCmd())
	cmd.AddCommand(newProjectsCreateCmd())
	cmd.AddCommand(newProjectsDeleteCmd())
	cmd.AddCommand(newProjectsTestCasesCmd())
	return cmd
}

func newProjectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Get("/api/v1/projects", nil)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var resp ListResponse[ProjectSummary]
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			headers := []string{"NAME", "TEST CASES"}
			var rows [][]string
			for _, p := range resp.Items {
				rows = append(rows, []string{p.Name, strconv.Itoa(p.TestCases)})
			}
			printTable(headers, rows)
			return nil
		},
	}
}

func newProjectsCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project (overwrites an existing entry of the same name)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Post("/api/v1/projects", map[string]interface{}{
				"name": name,
			})
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var resp CreateProjectResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if resp.Replaced {
				printMessage(fmt.Sprintf("Project %q replaced an existing entry", resp.Name))
			} else {
				printMessage(fmt.Sprintf("Project %q created", resp.Name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (required)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectsDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Deactivate a project and its associated runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !confirmAction(fmt.Sprintf("Deactivate project %q and its associated runs?", name), skipConfirm) {
				printMessage("Aborted")
				return nil
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			if _, err := client.Delete("/api/v1/projects/" + url.PathEscape(name)); err != nil {
				return err
			}

			printMessage(fmt.Sprintf("Project %q deactivated", name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func newProjectsTestCasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testcases <name>",
		Short: "List a project's catalog test cases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Get("/api/v1/projects/"+url.PathEscape(args[0])+"/testcases", nil)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var resp ListResponse[testcase.TestCase]
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			headers := []string{"ID", "TITLE", "PRIORITY", "STATUS", "ASSIGNEE", "LAST UPDATED"}
			var rows [][]string
			for _, tc := range resp.Items {
				rows = append(rows, []string{
					tc.ID,
					tc.Title,
					string(tc.Priority),
					string(tc.Status),
					tc.Assignee,
					tc.LastUpdated,
				})
			}
			printTable(headers, rows)
			return nil
		},
	}
}
