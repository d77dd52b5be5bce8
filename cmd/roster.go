package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/frahmantamala/hr-dashboard/internal"
	"github.com/frahmantamala/hr-dashboard/internal/preference"
	preferencePostgres "github.com/frahmantamala/hr-dashboard/internal/preference/postgres"
	"github.com/frahmantamala/hr-dashboard/internal/report"
	"github.com/frahmantamala/hr-dashboard/internal/roster"
	"github.com/frahmantamala/hr-dashboard/internal/store"
	"github.com/frahmantamala/hr-dashboard/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	rosterCmd = &cobra.Command{
		Use:   "roster",
		Short: "Fetch the roster once and print department and rating breakdowns",
		RunE:  runRoster,
	}
	rosterLimit int
)

func init() {
	rosterCmd.Flags().IntVarP(&rosterLimit, "limit", "l", 0, "number of people to fetch (defaults to roster.limit)")
}

func runRoster(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	setupLogger(cfg)
	lg := logger.LoggerWrapper()

	if rosterLimit > 0 {
		cfg.Roster.Limit = rosterLimit
	}

	ctx, cancel := internal.WithTimeout(context.Background(), cfg.Roster.Timeout)
	defer cancel()

	s := store.New(store.WithPersisted(loadPersisted(ctx, cfg)), store.WithLogger(lg))

	client := roster.NewClient(roster.Config{
		BaseURL: cfg.Roster.BaseURL,
		Limit:   cfg.Roster.Limit,
		Timeout: cfg.Roster.Timeout,
	}, lg)
	loader := roster.NewLoader(client, roster.NewGenerator(cfg.Roster.Seed), s, lg)
	if err := loader.Load(ctx); err != nil {
		return fmt.Errorf("roster: %w", err)
	}

	renderer := report.NewRenderer(report.ThemeFor(s.State().DarkMode))
	_, err = fmt.Fprint(os.Stdout, renderer.Render(store.NewViews(s)))
	return err
}

// loadPersisted reads the saved preferences; a missing database only costs
// the bookmark count and the palette.
func loadPersisted(ctx context.Context, cfg *internal.Config) store.Persisted {
	lg := logger.LoggerWrapper()

	conn, err := initDB(cfg.Database)
	if err != nil {
		lg.Warn("roster: preferences unavailable", "error", err)
		return store.Persisted{}
	}
	defer conn.Close()

	gdb, err := openGorm(cfg.Database, conn)
	if err != nil {
		lg.Warn("roster: preferences unavailable", "error", err)
		return store.Persisted{}
	}

	persisted, err := preference.NewService(preferencePostgres.NewPreferenceRepository(gdb), cfg.Storage.Key, lg).Load(ctx)
	if err != nil {
		lg.Warn("roster: preferences unavailable", "error", err)
		return store.Persisted{}
	}
	return persisted
}
