// Package main runs the gymstats MCP server over stdio, for local MCP
// clients. The service mounts the same server at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymprs/internal/config"
	"github.com/2beens/gymprs/internal/db"
	"github.com/2beens/gymprs/internal/gymstats"
	gymstatsmcp "github.com/2beens/gymprs/internal/gymstats/mcp"
	"github.com/2beens/gymprs/internal/logging"
	"github.com/2beens/gymprs/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the MCP protocol
	cleanupLogging := logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	defer cleanupLogging()
	if cfg.LogsPath == "" {
		log.SetOutput(os.Stderr)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("GYMPRS_DB_USER"),
		DBPassword: os.Getenv("GYMPRS_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// read-only tools, no locking or repairs needed
	engine, err := gymstats.NewEngine(dbPool, nil, cfg, metrics.NewManager("gymprs", "mcp", prometheus.NewRegistry()))
	if err != nil {
		log.Fatalf("gymstats engine: %v", err)
	}

	server := gymstatsmcp.NewServer(gymstatsmcp.NewContextService(gymstatsmcp.ContextServiceParams{
		Schema:        gymstatsmcp.NewPoolSchemaRepo(dbPool),
		ExerciseTypes: engine.ExerciseTypes,
		Ledger:        engine.Ledger,
		Suggester:     engine.Suggester,
		Logs:          engine.LiftLogs,
	}))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
