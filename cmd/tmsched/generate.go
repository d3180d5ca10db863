package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"transit-mixer-scheduler/internal/adapters/export"
	"transit-mixer-scheduler/internal/adapters/repositories"
	"transit-mixer-scheduler/internal/config"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/db"
	"transit-mixer-scheduler/internal/services"
)

type generateOptions struct {
	start    string
	total    int
	load     int
	travel   int
	unload   int
	buffer   int
	perTrip  int
	vehicles int

	scenario   string
	dbPath     string
	format     string
	exportPath string
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}

func newGenerateCmd() *cobra.Command {
	var o generateOptions

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a trip schedule",
		Example: `  tmsched generate --start 05:00 --total 40 --load 10 --travel 30 --unload 15 --buffer 5 --per-trip 10 --vehicles 2
  tmsched generate --scenario early-slab --vehicles 3 --export schedule.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, o)
		},
	}

	f := generateCmd.Flags()
	f.StringVar(&o.start, "start", "", `start time as "HH:MM" or minutes`)
	f.IntVar(&o.total, "total", 0, "total batch quantity required")
	f.IntVar(&o.load, "load", 0, "loading (pour) time at plant, minutes")
	f.IntVar(&o.travel, "travel", 0, "one-way travel time, minutes")
	f.IntVar(&o.unload, "unload", 0, "pumping interval at site, minutes")
	f.IntVar(&o.buffer, "buffer", 0, "wait between site arrival and pumping, minutes")
	f.IntVar(&o.perTrip, "per-trip", 0, "batch quantity per trip")
	f.IntVar(&o.vehicles, "vehicles", 0, "number of transit mixers")
	f.StringVar(&o.scenario, "scenario", "", "start from a stored scenario")
	f.StringVar(&o.dbPath, "db", "", "SQLite database holding scenarios (env DB_PATH, default data/app.db)")
	f.StringVar(&o.format, "format", "table", "output format: table or json")
	f.StringVar(&o.exportPath, "export", "", "also write the schedule to a .xlsx or .csv file")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, o generateOptions) error {
	cfg, err := resolveConfig(cmd.Context(), cmd, o)
	if err != nil {
		return err
	}

	trips, err := services.ScheduleTrips(cfg)
	if err != nil {
		return fmt.Errorf("generate: invalid inputs: %w", err)
	}
	summary := services.SummarizeSchedule(cfg, trips)

	out := cmd.OutOrStdout()
	switch o.format {
	case "table":
		if err := writeTable(out, trips, summary); err != nil {
			return err
		}
	case "json":
		if err := writeJSON(out, cfg, trips, summary); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format: %s", o.format)
	}

	if o.exportPath != "" {
		if err := exportFile(o.exportPath, trips); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Trip schedule exported to %s\n", o.exportPath)
	}

	return nil
}

// resolveConfig layers defaults file, optional scenario and explicitly set flags.
func resolveConfig(ctx context.Context, cmd *cobra.Command, o generateOptions) (domain.ScheduleConfig, error) {
	defaults, err := config.LoadDefaults(defaultsPath)
	if err != nil {
		return domain.ScheduleConfig{}, err
	}
	cfg, err := defaults.ScheduleConfig()
	if err != nil {
		return domain.ScheduleConfig{}, err
	}

	if o.scenario != "" {
		sc, err := loadScenario(ctx, o.dbPath, o.scenario)
		if err != nil {
			return domain.ScheduleConfig{}, err
		}
		cfg = sc.Config
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		m, err := domain.ParseClock(o.start)
		if err != nil {
			return domain.ScheduleConfig{}, err
		}
		cfg.StartTime = m
	}

	ints := []struct {
		flag string
		dst  *int
		val  int
	}{
		{"total", &cfg.TotalQuantity, o.total},
		{"load", &cfg.LoadDuration, o.load},
		{"travel", &cfg.TravelDuration, o.travel},
		{"unload", &cfg.UnloadDuration, o.unload},
		{"buffer", &cfg.BufferDuration, o.buffer},
		{"per-trip", &cfg.QuantityPerTrip, o.perTrip},
		{"vehicles", &cfg.VehicleCount, o.vehicles},
	}
	for _, i := range ints {
		if flags.Changed(i.flag) {
			*i.dst = i.val
		}
	}

	return cfg, nil
}

func loadScenario(ctx context.Context, dbPath, name string) (*domain.Scenario, error) {
	if dbPath == "" {
		dbPath = config.Get("DB_PATH", "data/app.db")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("load scenario: database %q: %w", dbPath, err)
	}

	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	defer conn.Close()

	sc, err := repositories.NewSqliteScenarioRepository(conn).GetScenario(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	log.Debug().Str("scenario", sc.Name).Msg("loaded scenario")
	return sc, nil
}

// exportFile renders into memory and writes the file only on success.
func exportFile(path string, trips []domain.Trip) error {
	format, err := export.ParseFormat(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, trips); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export: write %q: %w", path, err)
	}
	return nil
}
