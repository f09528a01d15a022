package main

import (
	"context"
	"database/sql"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fincontrol/internal/config"
	"github.com/jask/fincontrol/internal/database"
	"github.com/jask/fincontrol/internal/database/repository"
	"github.com/jask/fincontrol/internal/ledger"
	"github.com/jask/fincontrol/internal/logger"
	"github.com/jask/fincontrol/internal/prefs"
	"github.com/jask/fincontrol/internal/testdata"
	"github.com/jask/fincontrol/internal/tui"
)

func main() {
	ctx := context.Background()
	boot := logger.New()

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("config")
	}
	if _, err := config.EnsureFile(cfg); err != nil {
		boot.Warn().Err(err).Str("path", config.Path()).Msg("config file not written")
	}

	dataDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		boot.Fatal().Err(err).Msg("mkdir db dir")
	}

	// stdout and stderr belong to the terminal UI while it runs
	logFile, err := os.OpenFile(filepath.Join(dataDir, "fincontrol.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		boot.Fatal().Err(err).Msg("open log file")
	}
	defer logFile.Close()
	log := logger.WithLevel(logger.NewWithWriter(logFile), cfg.Log.Level)
	log = logger.WithFields(log, map[string]interface{}{"db": cfg.Database.Path})
	ctx = logger.WithContext(ctx, log)

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		boot.Fatal().Err(err).Msg("migrate")
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		boot.Fatal().Err(err).Msg("open db")
	}
	defer db.Close()

	userID := cfg.User.ID
	if err := database.SeedDefaults(ctx, db, userID); err != nil {
		boot.Fatal().Err(err).Msg("seed defaults")
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.UI.Timezone).Msg("using local timezone")
		loc = time.Local
	}

	led := ledger.New(repository.NewStore(db), userID,
		ledger.WithClock(func() time.Time { return time.Now().In(loc) }),
		ledger.WithLogger(log),
	)
	if err := led.Load(ctx); err != nil {
		// fall back to the last session's snapshot; store writes keep being attempted
		st, snapErr := prefs.LoadState(userID)
		if snapErr != nil {
			boot.Fatal().Err(err).AnErr("snapshot", snapErr).Msg("load")
		}
		log.Error().Err(err).Msg("database load failed, using snapshot")
		led.Restore(st)
	}

	if cfg.Demo.Seed {
		if n := testdata.Seed(ctx, led, rand.New(rand.NewSource(time.Now().UnixNano()))); n > 0 {
			log.Info().Int("transactions", n).Msg("demo data seeded")
		}
	}

	app := tui.New(ctx, cfg, led, tui.WithReset(resetFunc(db, userID)))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		boot.Error().Err(err).Msg("ui")
	}

	saveSnapshot(ctx, led)
}

func resetFunc(db *sql.DB, userID string) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := database.Reset(ctx, db, userID); err != nil {
			return err
		}
		log := logger.FromContext(ctx)
		log.Warn().Str("user_id", userID).Msg("user data reset")
		return database.SeedDefaults(ctx, db, userID)
	}
}

// saveSnapshot keeps a JSON copy of the session's final state.
func saveSnapshot(ctx context.Context, led *ledger.Ledger) {
	log := logger.FromContext(ctx)
	if err := prefs.SaveState(led.UserID(), led.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("snapshot not written")
		return
	}
	log.Debug().Msg("snapshot written")
}
