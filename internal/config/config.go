package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Environment string `toml:"-"`

	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsHost string `toml:"metrics_host"`
	MetricsPort int    `toml:"metrics_port"`
	// browser origins allowed by CORS, next to the gymstats app and CLI user agents
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis; with an empty host scope locks and pending scopes stay in process
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// mcp over http, at /mcp
	MCPEnabled bool `toml:"mcp_enabled"`

	Engine      EngineConfig      `toml:"engine"`
	Progression ProgressionConfig `toml:"progression"`
}

// EngineConfig tunes PR detection, scope locking, the pending scope repair
// job and the exercise capability cache.
type EngineConfig struct {
	OneRMFormula             string `toml:"one_rm_formula"`
	LockTTLSeconds           int    `toml:"lock_ttl_seconds"`
	LockWaitSeconds          int    `toml:"lock_wait_seconds"`
	RepairSchedule           string `toml:"repair_schedule"`
	RepairBatchSize          int    `toml:"repair_batch_size"`
	CapabilityCacheSize      int    `toml:"capability_cache_size"`
	CapabilityCacheExpire    int    `toml:"capability_cache_expire_seconds"`
	RecalculateRatePerMinute int    `toml:"recalculate_rate_per_minute"`
}

type ProgressionConfig struct {
	DefaultStrategy  string            `toml:"default_strategy"`
	Categories       map[string]string `toml:"categories"`
	LinearTargetReps int               `toml:"linear_target_reps"`
	LinearIncrement  float64           `toml:"linear_increment"`
	DoubleMinReps    int               `toml:"double_min_reps"`
	DoubleMaxReps    int               `toml:"double_max_reps"`
	DoubleIncrement  float64           `toml:"double_increment"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env, with
// defaults applied to everything left unset.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: no section for env [%s]", ErrInvalidConfig, env)
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.MetricsHost == "" {
		c.MetricsHost = "localhost"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresHost == "" {
		c.PostgresHost = "localhost"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresDBName == "" {
		c.PostgresDBName = "gymprs"
	}
	if c.RedisHost != "" && c.RedisPort == "" {
		c.RedisPort = "6379"
	}

	e := &c.Engine
	if e.OneRMFormula == "" {
		e.OneRMFormula = "epley"
	}
	if e.LockTTLSeconds <= 0 {
		e.LockTTLSeconds = 30
	}
	if e.LockWaitSeconds <= 0 {
		e.LockWaitSeconds = 10
	}
	if e.RepairSchedule == "" {
		e.RepairSchedule = "@every 1m"
	}
	if e.RepairBatchSize <= 0 {
		e.RepairBatchSize = 20
	}
	if e.RecalculateRatePerMinute <= 0 {
		e.RecalculateRatePerMinute = 10
	}

	p := &c.Progression
	if p.DefaultStrategy == "" {
		p.DefaultStrategy = "linear"
	}
	if p.LinearTargetReps <= 0 {
		p.LinearTargetReps = 5
	}
	if p.LinearIncrement <= 0 {
		p.LinearIncrement = 5
	}
	if p.DoubleMinReps <= 0 {
		p.DoubleMinReps = 8
	}
	if p.DoubleMaxReps <= 0 {
		p.DoubleMaxReps = 12
	}
	if p.DoubleIncrement <= 0 {
		p.DoubleIncrement = 5
	}
}

func (c *Config) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if c.Progression.DoubleMinReps >= c.Progression.DoubleMaxReps {
		return fmt.Errorf("%w: double progression rep band [%d, %d]",
			ErrInvalidConfig, c.Progression.DoubleMinReps, c.Progression.DoubleMaxReps)
	}
	return nil
}

// RedisAddr is empty when redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
