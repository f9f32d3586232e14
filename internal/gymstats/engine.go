package gymstats

import (
	"fmt"
	"time"

	"github.com/2beens/gymprs/internal/config"
	"github.com/2beens/gymprs/internal/gymstats/events"
	"github.com/2beens/gymprs/internal/gymstats/exercises"
	"github.com/2beens/gymprs/internal/gymstats/liftlogs"
	"github.com/2beens/gymprs/internal/gymstats/onerm"
	"github.com/2beens/gymprs/internal/gymstats/progression"
	"github.com/2beens/gymprs/internal/gymstats/records"
	"github.com/2beens/gymprs/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Engine holds the wired PR engine: storage, the ledger listener, the
// suggester and the pending scope repair job. The service, the MCP server
// and the CLI all build it the same way.
type Engine struct {
	Service       *Service
	LiftLogs      *liftlogs.Repo
	ExerciseTypes *exercises.Repo
	Capabilities  *exercises.CapabilityProvider
	Ledger        *records.PgStore
	Listener      *events.Listener
	Events        *events.Service
	Suggester     *progression.Suggester
	Pending       events.PendingScopes
	Repairer      *events.Repairer
}

// NewEngine wires the engine on top of the pool. With a nil rdb scope locks
// and pending scopes stay in process, which is only safe for a single
// instance.
func NewEngine(
	pool *pgxpool.Pool,
	rdb *redis.Client,
	cfg *config.Config,
	metricsManager *metrics.Manager,
) (*Engine, error) {
	formula, err := onerm.FormulaByName(cfg.Engine.OneRMFormula)
	if err != nil {
		return nil, fmt.Errorf("one rm formula: %w", err)
	}

	registry, err := progression.RegistryFromConfig(
		cfg.Progression.DefaultStrategy,
		cfg.Progression.Categories,
		progression.Linear{
			TargetReps: cfg.Progression.LinearTargetReps,
			Increment:  cfg.Progression.LinearIncrement,
		},
		progression.Double{
			MinReps:   cfg.Progression.DoubleMinReps,
			MaxReps:   cfg.Progression.DoubleMaxReps,
			Increment: cfg.Progression.DoubleIncrement,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("progression registry: %w", err)
	}

	var (
		locker  events.ScopeLocker
		pending events.PendingScopes
	)
	if rdb != nil {
		locker = events.NewRedisLocker(rdb, time.Duration(cfg.Engine.LockTTLSeconds)*time.Second)
		pending = events.NewRedisPendingScopes(rdb)
	} else {
		log.Warnln("redis not configured, scope locks and pending scopes are kept in process")
		locker = events.NewLocalLocker()
		pending = events.NewMemoryPendingScopes()
	}

	liftLogsRepo := liftlogs.NewRepo(pool)
	exerciseTypesRepo := exercises.NewRepo(pool)
	capabilities := exercises.NewCapabilityProvider(
		exerciseTypesRepo,
		formula,
		cfg.Engine.CapabilityCacheSize,
		cfg.Engine.CapabilityCacheExpire,
	)
	ledger := records.NewPgStore(pool)
	eventsService := events.NewService(events.NewRepo(pool))

	listener := events.NewListener(events.ListenerParams{
		Logs:           liftLogsRepo,
		Detector:       records.NewDetector(ledger, capabilities),
		Recalculator:   records.NewRecalculator(ledger, capabilities),
		Ledger:         ledger,
		Publisher:      eventsService,
		Locker:         locker,
		Pending:        pending,
		MetricsManager: metricsManager,
		LockWait:       time.Duration(cfg.Engine.LockWaitSeconds) * time.Second,
	})
	suggester := progression.NewSuggester(liftLogsRepo, capabilities, registry)

	return &Engine{
		Service:       NewService(liftLogsRepo, listener, ledger, suggester),
		LiftLogs:      liftLogsRepo,
		ExerciseTypes: exerciseTypesRepo,
		Capabilities:  capabilities,
		Ledger:        ledger,
		Listener:      listener,
		Events:        eventsService,
		Suggester:     suggester,
		Pending:       pending,
		Repairer:      events.NewRepairer(pending, listener, cfg.Engine.RepairBatchSize, metricsManager),
	}, nil
}
