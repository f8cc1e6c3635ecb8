package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/hairizuanbinnoorazman/qa-dashboard/environment"
	"github.com/spf13/cobra"
)

func newEnvironmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"envs"},
		Short:   "Manage tracked test environments",
	}

	cmd.AddCommand(newEnvironmentsListCmd())
	cmd.AddCommand(newEnvironmentsCreateCmd())
	cmd.AddCommand(newEnvironmentsUpdateCmd())
	cmd.AddCommand(newEnvironmentsDeleteCmd())
	return cmd
}

func environmentHeaders() []string {
	return []string{"NAME", "URL", "STATUS", "LAST CHECKED"}
}

func environmentRow(e environment.Environment) []string {
	return []string{e.Name, e.URL, string(e.Status), e.LastChecked.Format(time.RFC3339)}
}

func newEnvironmentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all environments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			body, err := client.Get("/api/v1/environments", nil)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var resp ListResponse[environment.Environment]
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			var rows [][]string
			for _, e := range resp.Items {
				rows = append(rows, environmentRow(e))
			}
			printTable(environmentHeaders(), rows)
			return nil
		},
	}
}

func newEnvironmentsCreateCmd() *cobra.Command {
	var name string
	var url string
	var status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			payload := map[string]interface{}{
				"name": name,
				"url":  url,
			}
			if status != "" {
				payload["status"] = status
			}

			body, err := client.Post("/api/v1/environments", payload)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var e environment.Environment
			if err := json.Unmarshal(body, &e); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			printMessage(fmt.Sprintf("Environment %q created with status %s", e.Name, e.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Environment name (required)")
	cmd.Flags().StringVar(&url, "set-url", "", "Environment base URL")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (Up, Down, Maintenance)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newEnvironmentsUpdateCmd() *cobra.Command {
	var envURL string
	var status string

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update an environment's status or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			payload := map[string]interface{}{}
			if envURL != "" {
				payload["url"] = envURL
			}
			if status != "" {
				payload["status"] = status
			}
			if len(payload) == 0 {
				return fmt.Errorf("nothing to update, provide at least one of --set-url or --status")
			}

			body, err := client.Put("/api/v1/environments/"+url.PathEscape(args[0]), payload)
			if err != nil {
				return err
			}

			if flagJSON {
				var raw json.RawMessage
				json.Unmarshal(body, &raw)
				printJSON(raw)
				return nil
			}

			var e environment.Environment
			if err := json.Unmarshal(body, &e); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			printTable(environmentHeaders(), [][]string{environmentRow(e)})
			return nil
		},
	}

	cmd.Flags().StringVar(&envURL, "set-url", "", "New environment base URL")
	cmd.Flags().StringVar(&status, "status", "", "New status (Up, Down, Maintenance)")
	return cmd
}

func newEnvironmentsDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmAction(fmt.Sprintf("Delete environment %q?", args[0]), skipConfirm) {
				printMessage("Aborted")
				return nil
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			if _, err := client.Delete("/api/v1/environments/" + url.PathEscape(args[0])); err != nil {
				return err
			}

			printMessage(fmt.Sprintf("Environment %q deleted", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}
