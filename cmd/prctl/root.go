package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/gymprs/internal/config"
	"github.com/2beens/gymprs/internal/db"
	"github.com/2beens/gymprs/internal/gymstats"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/logging"
	"github.com/2beens/gymprs/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag      string
	configPath   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:     "prctl",
	Short:   "prctl - personal record ledger tooling",
	Long:    "prctl rebuilds, verifies and prints the personal record ledger of gymprs.",
	Version: version,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(logging.LoggerSetupParams{LogLevel: logLevelFlag})
		log.SetOutput(os.Stderr)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "log level")

	rootCmd.AddCommand(newRecalculateCmd())
	rootCmd.AddCommand(newRecordsCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newMigrateCmd())
}

func loadConfig() (*config.Config, db.NewDBPoolParams, error) {
	cfg, err := config.Load(envFlag, configPath)
	if err != nil {
		return nil, db.NewDBPoolParams{}, err
	}
	return cfg, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("GYMPRS_DB_USER"),
		DBPassword: os.Getenv("GYMPRS_DB_PASS"),
	}, nil
}

// openEngine connects to postgres, and to redis when configured so scope
// locks are shared with a running service. The returned func closes both.
func openEngine(ctx context.Context) (*gymstats.Engine, func(), error) {
	cfg, dbParams, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	pool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, nil, fmt.Errorf("db pool: %w", err)
	}

	var rdb *redis.Client
	if addr := cfg.RedisAddr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("GYMPRS_REDIS_PASS"),
		})
	}

	closeAll := func() {
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				log.Errorf("close redis client: %s", err)
			}
		}
		pool.Close()
	}

	engine, err := gymstats.NewEngine(pool, rdb, cfg, metrics.NewManager("gymprs", "prctl", prometheus.NewRegistry()))
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	return engine, closeAll, nil
}

type scopeFlags struct {
	userID     int
	exerciseID string
}

func (f *scopeFlags) register(cmd *cobra.Command, required bool) {
	cmd.Flags().IntVar(&f.userID, "user", 0, "user id")
	cmd.Flags().StringVar(&f.exerciseID, "exercise", "", "exercise id")
	if required {
		_ = cmd.MarkFlagRequired("user")
		_ = cmd.MarkFlagRequired("exercise")
	}
}

func (f *scopeFlags) scope() (liftlogs.Scope, error) {
	if f.userID <= 0 {
		return liftlogs.Scope{}, fmt.Errorf("invalid user id: %d", f.userID)
	}
	if f.exerciseID == "" {
		return liftlogs.Scope{}, fmt.Errorf("exercise id missing")
	}
	return liftlogs.Scope{UserID: f.userID, ExerciseID: f.exerciseID}, nil
}
