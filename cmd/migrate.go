package cmd

import (
	"context"
	"log"

	"github.com/frahmantamala/hr-dashboard/db"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run the embedded db migrations",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	setupLogger(cfg)

	conn, err := initDB(cfg.Database)
	if err != nil {
		log.Fatalf("migrate: failed to open DB: %v\n", err)
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn.DB, db.Dialect(cfg.Database.Driver), migrateRollback); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return nil
}
