package warehouse

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/snowflakedb/gosnowflake"

	"sortsense/internal/config"
)

// NewDB opens a connection pool against the configured warehouse.
// Supports the Snowflake warehouse the system was built for and a
// Postgres variant for self-hosted deployments.
func NewDB(cfg *config.WarehouseConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case "postgres":
		db, err = sqlx.Connect("pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres warehouse: %w", err)
		}
	case "snowflake":
		dsn, dsnErr := gosnowflake.DSN(&gosnowflake.Config{
			Account:   cfg.Account,
			User:      cfg.User,
			Password:  cfg.Password,
			Database:  cfg.Database,
			Schema:    cfg.Schema,
			Warehouse: cfg.Warehouse,
			Role:      cfg.Role,
		})
		if dsnErr != nil {
			return nil, fmt.Errorf("building snowflake DSN: %w", dsnErr)
		}
		db, err = sqlx.Connect("snowflake", dsn)
		if err != nil {
			return nil, fmt.Errorf("connecting to snowflake: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown warehouse driver: %s", cfg.Driver)
	}

	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return db, nil
}
