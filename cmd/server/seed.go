package main

import (
	"github.com/spf13/cobra"

	"taskflow/internal/config"
	"taskflow/internal/repository"
	"taskflow/internal/seed"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the board with demo data",
	Long: `Seed deletes every column, card and tag and loads a demo board.
Without --force it asks for confirmation first.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "skip the confirmation prompt")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	target := cfg.SQLitePath
	if cfg.DBDriver == config.DriverPostgres {
		target = "postgres database " + cfg.DBName
	}
	if !seedForce && !seed.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), target) {
		cmd.Println("Seeding cancelled.")
		return nil
	}

	db, err := repository.Open(cfg, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := repository.Migrate(cfg, db); err != nil {
		return err
	}

	_, err = seed.Run(cmd.Context(), repository.NewStore(db), log)
	return err
}
