package main

import (
	"github.com/spf13/cobra"

	"taskflow/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
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
		log.Info("migrations applied", "driver", cfg.DBDriver)
		return nil
	},
}
