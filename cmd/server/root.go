package main

import (
	"fmt"
	"os"

	"github.com/dom/superheroes-api/internal/config"
	"github.com/dom/superheroes-api/internal/logging"
	"github.com/dom/superheroes-api/internal/repository/gormrepo"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Superheroes REST API",
	Long: `Serves heroes, powers and hero powers over HTTP.

Running without a subcommand starts the server.

  server serve                 # start the HTTP server
  server migrate               # create or update the schema
  server seed --reset          # load the bundled sample data`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultFile, "config file path")
}

// bootstrap loads configuration, builds the logger and opens the database.
func bootstrap() (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(cfg)
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := gormrepo.NewConnection(cfg.DatabaseURL, logging.GormLevel(cfg))
	if err != nil {
		return nil, log, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, log, db, nil
}

func closeDB(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database")
	}
}
