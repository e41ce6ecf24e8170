package repository

import (
	"context"
	"time"

	"github.com/zizaimai/rental-manager/internal/model"
)

// ListActors returns one page of actors ordered by last name.  A search
// term matches either name.
func (r *CatalogRepo) ListActors(ctx context.Context, q model.ListQuery) (model.Page[model.Actor], error) {
	q = q.Normalize()
	where, args := "", []any{}
	if q.Search != "" {
		where = " WHERE (a.first_name " + r.d.like + " ? OR a.last_name " + r.d.like + " ?)"
		p := likePattern(q.Search)
		args = append(args, p, p)
	}

	total, err := r.count(ctx, "SELECT COUNT(*) FROM actor a"+where, args...)
	if err != nil {
		return model.Page[model.Actor]{}, err
	}

	rows, err := r.query(ctx, `SELECT a.actor_id, a.first_name, a.last_name, a.last_update, COUNT(fa.film_id)
		FROM actor a LEFT JOIN film_actor fa ON fa.actor_id = a.actor_id`+where+`
		GROUP BY a.actor_id, a.first_name, a.last_name, a.last_update
		ORDER BY a.last_name, a.first_name, a.actor_id
		LIMIT ? OFFSET ?`, append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return model.Page[model.Actor]{}, err
	}
	defer rows.Close()

	var actors []model.Actor
	for rows.Next() {
		var (
			a   model.Actor
			upd time.Time
		)
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &upd, &a.FilmCount); err != nil {
			return model.Page[model.Actor]{}, err
		}
		a.LastUpdate = ts(upd)
		actors = append(actors, a)
	}
	if err := rows.Err(); err != nil {
		return model.Page[model.Actor]{}, err
	}
	return page(actors, total, q), nil
}

// GetActor returns one actor with the films they appear in.
func (r *CatalogRepo) GetActor(ctx context.Context, id uint64) (model.Actor, error) {
	var (
		a   model.Actor
		upd time.Time
	)
	err := r.queryRow(ctx, `SELECT actor_id, first_name, last_name, last_update FROM actor WHERE actor_id = ?`, id).
		Scan(&a.ID, &a.FirstName, &a.LastName, &upd)
	if err != nil {
		return model.Actor{}, notFound(err)
	}
	a.LastUpdate = ts(upd)

	films, err := r.queryFilms(ctx, "SELECT "+r.filmColumns()+`
		FROM film f JOIN language l ON l.language_id = f.language_id
		WHERE f.film_id IN (SELECT fa.film_id FROM film_actor fa WHERE fa.actor_id = ?)
		ORDER BY f.title`, id)
	if err != nil {
		return model.Actor{}, err
	}
	if films == nil {
		films = []model.Film{}
	}
	a.Films = model.Some(films)
	a.FilmCount = len(films)
	return a, nil
}
