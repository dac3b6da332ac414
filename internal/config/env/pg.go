package env

import (
	"net"
	"net/url"
	"os"
	"strconv"

	"pixel_casino/internal/config"

	"github.com/pkg/errors"
)

const (
	dsnEnvName        = "PG_DSN"
	pgHostEnvName     = "PG_HOST"
	pgPortEnvName     = "PG_PORT"
	pgUserEnvName     = "PG_USER"
	pgPasswordEnvName = "PG_PASSWORD"
	pgDatabaseEnvName = "PG_DATABASE"
	pgMaxConnsEnvName = "PG_MAX_CONNS"

	defaultPGPort     = "5432"
	defaultPGMaxConns = 10
)

type pgConfig struct {
	dsn string
}

// NewPGConfig берет PG_DSN целиком или собирает его из PG_HOST, PG_USER и т.д.
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnEnvName)
	if len(dsn) == 0 {
		host := os.Getenv(pgHostEnvName)
		if len(host) == 0 {
			return nil, errors.New("pg dsn not found")
		}

		port := os.Getenv(pgPortEnvName)
		if len(port) == 0 {
			port = defaultPGPort
		}

		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(os.Getenv(pgUserEnvName), os.Getenv(pgPasswordEnvName)),
			Host:     net.JoinHostPort(host, port),
			Path:     "/" + os.Getenv(pgDatabaseEnvName),
			RawQuery: "sslmode=disable",
		}
		dsn = u.String()
	}

	maxConns, err := intFromEnv(pgMaxConnsEnvName, defaultPGMaxConns)
	if err != nil {
		return nil, err
	}
	if maxConns <= 0 {
		return nil, errors.Errorf("%s must be positive", pgMaxConnsEnvName)
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid pg dsn")
	}
	q := u.Query()
	if !q.Has("pool_max_conns") {
		q.Set("pool_max_conns", strconv.Itoa(maxConns))
		u.RawQuery = q.Encode()
	}

	return &pgConfig{
		dsn: u.String(),
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
