// Package database opens the dvdrental database used when the catalog is
// read directly instead of through the backend API.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// driverNames maps configured drivers to registered database/sql names.
var driverNames = map[string]string{
	"postgres": "pgx",
	"mysql":    "mysql",
}

// Open connects with the given driver ("postgres" or "mysql") and verifies
// the connection.  MySQL DSNs should carry parseTime=true so DATETIME
// columns scan into time.Time.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	name, ok := driverNames[driver]
	if !ok {
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}
	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: ping %s: %w", driver, err)
	}
	return db, nil
}
