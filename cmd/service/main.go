package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/2beens/gymprs/internal"
	"github.com/2beens/gymprs/internal/config"
	"github.com/2beens/gymprs/internal/db"
	"github.com/2beens/gymprs/internal/logging"
	"github.com/2beens/gymprs/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	skipMigrations := flag.Bool("skip-migrations", false, "do not apply db migrations on start")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	if cfg.LogsPath != "" {
		logsDir := filepath.Dir(cfg.LogsPath)
		exists, err := pkg.PathExists(logsDir, true)
		if err != nil || !exists {
			log.Warnf("logs dir [%s] not usable (exists: %t, err: %v), logging to stdout", logsDir, exists, err)
			cfg.LogsPath = ""
		}
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	cleanupLogging := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "gymprs-service",
	})
	defer cleanupLogging()

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	dbUser := os.Getenv("GYMPRS_DB_USER")
	dbPassword := os.Getenv("GYMPRS_DB_PASS")
	if dbPassword == "" {
		log.Warnln("db password not set. use GYMPRS_DB_PASS")
	}

	redisPassword := os.Getenv("GYMPRS_REDIS_PASS")
	if cfg.RedisAddr() != "" && redisPassword == "" {
		log.Errorf("redis password not set. use GYMPRS_REDIS_PASS")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	if !*skipMigrations {
		version, err := db.Migrate(db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     dbUser,
			DBPassword: dbPassword,
		})
		if err != nil {
			log.Fatalf("migrate db: %s", err)
		}
		log.Infof("db schema version: %d", version)
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			DBUser:                  dbUser,
			DBPassword:              dbPassword,
			RedisPassword:           redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	if err := server.Serve(cfg.Host, cfg.Port); err != nil {
		log.Fatalf("serve: %s", err)
	}

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
