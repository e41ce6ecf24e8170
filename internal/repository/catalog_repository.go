package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/zizaimai/rental-manager/internal/model"
)

// CatalogRepo answers the catalog views from the database.
type CatalogRepo struct {
	db *sql.DB
	d  Dialect
}

// NewCatalogRepo wraps an open database handle.
func NewCatalogRepo(db *sql.DB, d Dialect) *CatalogRepo {
	return &CatalogRepo{db: db, d: d}
}

// Ping verifies the database is reachable.
func (r *CatalogRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *CatalogRepo) query(ctx context.Context, q string, args ...any) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, r.d.Rebind(q), args...)
}

func (r *CatalogRepo) queryRow(ctx context.Context, q string, args ...any) *sql.Row {
	return r.db.QueryRowContext(ctx, r.d.Rebind(q), args...)
}

func (r *CatalogRepo) count(ctx context.Context, q string, args ...any) (int, error) {
	var n int
	if err := r.queryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// likePattern escapes LIKE wildcards in s and wraps it for a contains match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func ts(t time.Time) model.Timestamp { return model.Timestamp{Time: t.UTC()} }

func optString(ns sql.NullString) model.Optional[string] {
	if !ns.Valid {
		return model.None[string]()
	}
	return model.Some(ns.String)
}

func optTime(nt sql.NullTime) model.Optional[model.Timestamp] {
	if !nt.Valid {
		return model.None[model.Timestamp]()
	}
	return model.Some(ts(nt.Time))
}

func uint64s(ids []uint64) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func page[T any](items []T, total int, q model.ListQuery) model.Page[T] {
	if items == nil {
		items = []T{}
	}
	return model.Page[T]{Items: items, Total: total, Page: q.Page, PageSize: q.PageSize}
}
