package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"jellyfix/internal/infrastructure/config"
	"jellyfix/internal/infrastructure/database"
	"jellyfix/internal/infrastructure/persistence/migrations"
	"jellyfix/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long:  `Create the tickets and comments tables if they do not exist yet, then exit. Safe to run repeatedly.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "production", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("running schema migration", "database", cfg.Database.Path)

	if err := migrations.MigrateTicketTables(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migration completed successfully")
	return nil
}
