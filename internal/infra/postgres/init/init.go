package infra_pg_init

import (
	"fmt"

	"github.com/Jaymin100/BooHoo/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func EstablishConn(cfg config.Postgres) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	return db, nil
}
