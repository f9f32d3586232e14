package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	MaxConns       int32
	TracingEnabled bool
}

// ConnString builds the postgres URL for the params; the user defaults to postgres.
func (p NewDBPoolParams) ConnString(scheme string) string {
	user := url.User("postgres")
	if p.DBUser != "" {
		user = url.User(p.DBUser)
	}
	if p.DBPassword != "" {
		user = url.UserPassword(user.Username(), p.DBPassword)
	}
	u := url.URL{
		Scheme: scheme,
		User:   user,
		Host:   p.DBHost + ":" + p.DBPort,
		Path:   "/" + p.DBName,
	}
	return u.String()
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.ConnString("postgres"))
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}
