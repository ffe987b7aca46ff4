package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/password-guesser/internal/config"
	"github.com/jonathan/password-guesser/internal/db"
	"github.com/jonathan/password-guesser/internal/observability"
	"github.com/jonathan/password-guesser/internal/types"
)

var showCommand = &cobra.Command{
	Use:   "show",
	Short: "List hashes recorded in the potfile",
	RunE:  runShowCmd,
}

var (
	showAlgo        string
	showLimit       int
	showDatabaseURL string
)

func init() {
	showCommand.Flags().StringVarP(&showAlgo, "algo", "a", "", "Only list hashes of this algorithm")
	showCommand.Flags().IntVar(&showLimit, "limit", 50, "Maximum number of entries")
	showCommand.Flags().StringVar(&showDatabaseURL, "db-url", "", "PostgreSQL potfile URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(showCommand)
}

func runShowCmd(cmd *cobra.Command, _ []string) error {
	var algo types.Algorithm
	if showAlgo != "" {
		var err error
		if algo, err = types.ParseAlgorithm(showAlgo); err != nil {
			return err
		}
	}

	dbURL := showDatabaseURL
	if dbURL == "" && configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		dbURL = cfg.DatabaseURL
	}
	if dbURL == "" {
		dbURL = config.DatabaseURLFromEnv()
	}
	if dbURL == "" {
		return fmt.Errorf("no potfile configured: set --db-url or DATABASE_URL")
	}

	database, err := db.Connect(cmd.Context(), dbURL)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := database.Migrate(cmd.Context()); err != nil {
		return err
	}

	entries, err := database.ListCracked(cmd.Context(), algo, showLimit)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintCrackedHashes(entries)
	return nil
}
