package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymprs/internal/config"
	"github.com/2beens/gymprs/internal/db"
	"github.com/2beens/gymprs/internal/gymstats"
	"github.com/2beens/gymprs/internal/gymstats/events"
	"github.com/2beens/gymprs/internal/gymstats/exercises"
	gymstatsmcp "github.com/2beens/gymprs/internal/gymstats/mcp"
	"github.com/2beens/gymprs/internal/middleware"
	"github.com/2beens/gymprs/internal/telemetry/metrics"
	"github.com/2beens/gymprs/internal/telemetry/tracing"
	"github.com/2beens/gymprs/pkg"
)

// a lift log with a few dozen sets stays well below this
const maxRequestBodyBytes = 64 << 10

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client // nil when redis is not configured
	rateLimiter middleware.RequestRateLimiter

	gymstatsHandler *gymstats.Handler
	eventsHandler   *events.Handler
	typesHandler    *exercises.TypesHandler
	mcpHandler      http.Handler // nil when mcp is disabled
	repairer        *events.Repairer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBUser                  string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         params.DBUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymprs", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if addr := cfg.RedisAddr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymprs-service", rdb)
	if err != nil {
		return nil, err
	}

	engine, err := gymstats.NewEngine(dbPool, rdb, cfg, metricsManager)
	if err != nil {
		return nil, fmt.Errorf("new gymstats engine: %w", err)
	}

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		gymstatsHandler: gymstats.NewHandler(engine.Service),
		eventsHandler:   events.NewHandler(engine.Events),
		typesHandler:    exercises.NewTypesHandler(engine.ExerciseTypes, engine.Capabilities),
		repairer:        engine.Repairer,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if rdb != nil {
		s.rateLimiter = redis_rate.NewLimiter(rdb)
	}

	if cfg.MCPEnabled {
		mcpServer := gymstatsmcp.NewServer(gymstatsmcp.NewContextService(gymstatsmcp.ContextServiceParams{
			Schema:        gymstatsmcp.NewPoolSchemaRepo(dbPool),
			ExerciseTypes: engine.ExerciseTypes,
			Ledger:        engine.Ledger,
			Suggester:     engine.Suggester,
			Logs:          engine.LiftLogs,
		}))
		s.mcpHandler = gymstatsmcp.NewHTTPHandler(mcpServer)
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymprs-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	gymstatsRouter := r.PathPrefix("/gymstats").Subrouter()

	var recalculateLimiter mux.MiddlewareFunc
	if s.rateLimiter != nil {
		recalculateLimiter = middleware.RateLimit(
			s.rateLimiter,
			"gymstats-recalculate",
			"user",
			s.config.Engine.RecalculateRatePerMinute,
			s.metricsManager,
		)
	} else {
		log.Debugln("recalculate endpoint not rate limited, redis not configured")
	}
	s.gymstatsHandler.SetupRoutes(gymstatsRouter, recalculateLimiter)

	gymstatsRouter.HandleFunc("/types", s.typesHandler.HandleAdd).Methods("POST", "OPTIONS")
	gymstatsRouter.HandleFunc("/types", s.typesHandler.HandleGet).Methods("GET", "OPTIONS")
	gymstatsRouter.HandleFunc("/types", s.typesHandler.HandleUpdate).Methods("PUT", "OPTIONS")
	gymstatsRouter.HandleFunc("/types/{id}", s.typesHandler.HandleDelete).Methods("DELETE", "OPTIONS")

	gymstatsRouter.HandleFunc("/events/list/page/{page}/size/{size}", s.eventsHandler.HandleList).Methods("GET", "OPTIONS")

	if s.mcpHandler != nil {
		r.PathPrefix("/mcp").Handler(s.mcpHandler)
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.LimitRequestBody(maxRequestBodyBytes))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, "ok::"+s.versionInfo, http.StatusOK)
}

func (s *Server) Serve(host string, port int) error {
	if err := s.repairer.Start(s.config.Engine.RepairSchedule); err != nil {
		return fmt.Errorf("start pending scopes repairer: %w", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.MetricsHost, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
	return nil
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.repairer != nil {
		s.repairer.Stop()
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}
