package handler

import (
	"context"
	"errors"

	"github.com/zizaimai/rental-manager/internal/backend"
	"github.com/zizaimai/rental-manager/internal/model"
	"github.com/zizaimai/rental-manager/internal/repository"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog_test.go -package=handler

// Catalog is the read side the views fetch entity snapshots from.  Both the
// REST backend client and the direct database repository satisfy it.
type Catalog interface {
	ListFilms(ctx context.Context, q model.FilmQuery) (model.Page[model.Film], error)
	GetFilm(ctx context.Context, id uint64) (model.Film, error)
	ListActors(ctx context.Context, q model.ListQuery) (model.Page[model.Actor], error)
	GetActor(ctx context.Context, id uint64) (model.Actor, error)
	ListRentals(ctx context.Context, q model.ListQuery) (model.Page[model.Rental], error)
	GetRental(ctx context.Context, id uint64) (model.Rental, error)
	GetCustomer(ctx context.Context, id uint64) (model.Customer, error)
}

var (
	_ Catalog = (*backend.Client)(nil)
	_ Catalog = (*repository.CatalogRepo)(nil)
)

// errBadID is returned for an id param that does not fit in uint64.
var errBadID = errors.New("handler: id out of range")

func isNotFound(err error) bool {
	return errors.Is(err, backend.ErrNotFound) ||
		errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, errBadID)
}
