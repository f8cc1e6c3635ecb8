package main

import (
	"fmt"

	"github.com/hairizuanbinnoorazman/qa-dashboard/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  "Applies the schema for persisted records (environments). Only useful with a file-backed sqlite database or mysql.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := database.Connect(database.Config{
			Driver:       cfg.Database.Driver,
			Path:         cfg.Database.Path,
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			Database:     cfg.Database.Database,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := database.Migrate(db); err != nil {
			return err
		}

		fmt.Println("Schema applied successfully")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.AddCommand(migrateCmd)
}
