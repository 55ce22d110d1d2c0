// utilboard: workforce utilization dashboard
//
// A terminal dashboard over a deterministic mock of a consulting firm's
// staffing: location utilization, project rosters, bookings and the bench.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/utilboard/utilboard/internal/config"
	"github.com/utilboard/utilboard/internal/database"
	"github.com/utilboard/utilboard/internal/export"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui"
	"github.com/utilboard/utilboard/internal/util"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// shutdownTimeout bounds waiting for a scheduled export on exit.
const shutdownTimeout = 10 * time.Second

type options struct {
	configPath string
	debug      bool
	export     bool
	exportPath string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.export, "export", false, "Write one snapshot and exit")
	flag.StringVar(&opts.exportPath, "export-path", "", "Snapshot database path (overrides config)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("utilboard version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, cfgPath, err := config.Load(opts.configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	closeLog, err := setupLogging(cfg, opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("utilboard starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	if opts.export {
		return runExport(ctx, svc, cfg, opts.exportPath)
	}

	var snapshots tui.SnapshotStatus
	if cfg.Database.SnapshotSchedule != "" {
		scheduler, closeDB, err := startScheduler(ctx, svc, cfg, opts.exportPath)
		if err != nil {
			return err
		}
		defer closeDB()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := scheduler.Stop(stopCtx); err != nil {
				slog.Error("stopping scheduler", "error", err)
			}
		}()
		snapshots = scheduler
	}

	// Set version info for TUI
	tui.Version = Version
	tui.BuildTime = BuildTime

	slog.Info("starting TUI",
		"location", cfg.Dashboard.DefaultLocation,
		"scheduled_snapshots", snapshots != nil,
	)

	if err := tui.Run(ctx, svc, cfg, snapshots); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("utilboard shutdown complete")
	return nil
}

// setupLogging installs the default logger and returns a func closing the
// log file, if any.
func setupLogging(cfg *config.Config, debug bool) (func(), error) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	closer := func() {}
	var handler slog.Handler
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		closer = func() { logFile.Close() }
		handler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// newService builds the workforce engine from the dashboard settings.
func newService(cfg *config.Config) (*workforce.Service, error) {
	asOf, err := cfg.Dashboard.AsOfTime()
	if err != nil {
		return nil, fmt.Errorf("parsing as_of: %w", err)
	}

	wcfg := workforce.DefaultConfig()
	start, end, err := cfg.Dashboard.RosterDates()
	if err != nil {
		return nil, err
	}
	if !start.IsZero() {
		wcfg.RosterStart = start
	}
	if !end.IsZero() {
		wcfg.RosterEnd = end
	}
	wcfg.WeekHours = cfg.Dashboard.StandardWeekHours

	return workforce.NewService(wcfg, util.NewClock(asOf), workforce.NewRosterCache()), nil
}

// openStore opens and migrates the snapshot database.
func openStore(ctx context.Context, cfg *config.Config, override string) (*database.DB, error) {
	path := override
	if path == "" {
		var err error
		if path, err = config.EnsureDataDir(cfg); err != nil {
			return nil, fmt.Errorf("ensuring data directory: %w", err)
		}
	}

	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	applied, err := database.Migrate(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if applied > 0 {
		slog.Info("applied migrations", "count", applied)
	}

	return db, nil
}

func newExporter(svc *workforce.Service, cfg *config.Config, db *database.DB) *export.Exporter {
	return export.NewExporter(svc, db, export.Options{
		LocationID:    cfg.Dashboard.DefaultLocation,
		ForecastWeeks: cfg.Dashboard.ForecastWeeks,
	})
}

func runExport(ctx context.Context, svc *workforce.Service, cfg *config.Config, path string) error {
	db, err := openStore(ctx, cfg, path)
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := newExporter(svc, cfg, db).Export(ctx)
	if err != nil {
		return fmt.Errorf("exporting snapshot: %w", err)
	}

	fmt.Printf("snapshot %s written to %s (%d resources)\n", snap.ID, db.Path(), snap.ResourceCount)
	return nil
}

func startScheduler(ctx context.Context, svc *workforce.Service, cfg *config.Config, path string) (*export.Scheduler, func(), error) {
	db, err := openStore(ctx, cfg, path)
	if err != nil {
		return nil, nil, err
	}

	exporter := newExporter(svc, cfg, db)
	scheduler, err := export.NewScheduler(cfg.Database.SnapshotSchedule, export.RunnerFunc(func(ctx context.Context) error {
		_, err := exporter.Export(ctx)
		return err
	}), slog.Default())
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	scheduler.Start()
	return scheduler, func() {
		slog.Info("closing database")
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}, nil
}
