package main

import (
	"github.com/dom/superheroes-api/internal/repository/gormrepo"
	"github.com/dom/superheroes-api/internal/seed"
	"github.com/spf13/cobra"
)

var (
	seedFile  string
	seedReset bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load heroes, powers and hero powers from a YAML document",
	Long: `Load sample data. Without --file the bundled document is used,
unless SEED_FILE or seed_file in the config names one.

The whole document is written in one transaction; any invalid entry
leaves the database untouched.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "seed document path")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "delete existing rows first")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db, log)

	path := seedFile
	if path == "" {
		path = cfg.SeedFile
	}

	doc, err := seed.Load(path)
	if err != nil {
		return err
	}

	result, err := seed.Run(cmd.Context(), gormrepo.NewRepositories(db), doc, seedReset)
	if err != nil {
		return err
	}

	log.Info().
		Int("heroes", result.Heroes).
		Int("powers", result.Powers).
		Int("hero_powers", result.HeroPowers).
		Bool("reset", seedReset).
		Msg("seed complete")
	return nil
}
