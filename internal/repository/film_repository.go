package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/zizaimai/rental-manager/internal/model"
)

func (r *CatalogRepo) filmColumns() string {
	return `f.film_id, f.title, f.description, f.release_year, f.rental_rate,
	        f.rental_duration, f.replacement_cost, f.length, f.language_id, ` +
		r.d.rating + `, ` + r.d.specialFeatures + `, f.last_update, ` + r.d.fulltext + `,
	        TRIM(l.name), l.last_update,
	        (SELECT COUNT(*) FROM film_actor fa WHERE fa.film_id = f.film_id)`
}

func scanFilm(sc interface{ Scan(...any) error }) (model.Film, error) {
	var (
		f           model.Film
		description sql.NullString
		year        sql.NullInt64
		length      sql.NullInt64
		rating      string
		features    string
		lastUpdate  time.Time
		langName    string
		langUpdate  time.Time
	)
	if err := sc.Scan(&f.ID, &f.Title, &description, &year, &f.RentalRate,
		&f.RentalDuration, &f.ReplacementCost, &length, &f.LanguageID,
		&rating, &features, &lastUpdate, &f.Fulltext,
		&langName, &langUpdate, &f.CastCount); err != nil {
		return model.Film{}, err
	}
	f.Description = optString(description)
	f.ReleaseYear = int(year.Int64)
	f.Length = int(length.Int64)
	f.Rating = model.Rating(rating)
	f.SpecialFeatures = splitFeatures(features)
	f.LastUpdate = ts(lastUpdate)
	f.Language = model.Some(model.Language{
		ID:         f.LanguageID,
		Name:       model.LanguageName(langName),
		LastUpdate: ts(langUpdate),
	})
	return f, nil
}

// filmFilter renders the WHERE clause shared by the list and count queries.
func (r *CatalogRepo) filmFilter(q model.FilmQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q.Search != "" {
		conds = append(conds, "f.title "+r.d.like+" ?")
		args = append(args, likePattern(q.Search))
	}
	if q.Rating != "" {
		conds = append(conds, r.d.rating+" = ?")
		args = append(args, string(q.Rating))
	}
	if len(q.Categories) > 0 {
		conds = append(conds, `EXISTS (SELECT 1 FROM film_category fc
		        JOIN category cat ON cat.category_id = fc.category_id
		        WHERE fc.film_id = f.film_id AND cat.name IN (`+placeholders(len(q.Categories))+`))`)
		for _, c := range q.Categories {
			args = append(args, string(c))
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListFilms returns one page of films ordered by title, each with its
// language and categories.
func (r *CatalogRepo) ListFilms(ctx context.Context, q model.FilmQuery) (model.Page[model.Film], error) {
	q = q.Normalize()
	where, args := r.filmFilter(q)

	total, err := r.count(ctx, "SELECT COUNT(*) FROM film f"+where, args...)
	if err != nil {
		return model.Page[model.Film]{}, err
	}

	films, err := r.queryFilms(ctx,
		"SELECT "+r.filmColumns()+` FROM film f JOIN language l ON l.language_id = f.language_id`+
			where+" ORDER BY f.title, f.film_id LIMIT ? OFFSET ?",
		append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return model.Page[model.Film]{}, err
	}
	return page(films, total, q.ListQuery), nil
}

// GetFilm returns one film with its language and categories.
func (r *CatalogRepo) GetFilm(ctx context.Context, id uint64) (model.Film, error) {
	row := r.queryRow(ctx, "SELECT "+r.filmColumns()+
		` FROM film f JOIN language l ON l.language_id = f.language_id WHERE f.film_id = ?`, id)
	f, err := scanFilm(row)
	if err != nil {
		return model.Film{}, notFound(err)
	}
	cats, err := r.categoriesByFilm(ctx, []uint64{f.ID})
	if err != nil {
		return model.Film{}, err
	}
	f.Categories = model.Some(cats[f.ID])
	return f, nil
}

// queryFilms runs a film select and attaches categories to every row.
func (r *CatalogRepo) queryFilms(ctx context.Context, q string, args ...any) ([]model.Film, error) {
	rows, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []model.Film
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return films, nil
	}

	ids := make([]uint64, len(films))
	for i, f := range films {
		ids[i] = f.ID
	}
	cats, err := r.categoriesByFilm(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range films {
		films[i].Categories = model.Some(cats[films[i].ID])
	}
	return films, nil
}

// categoriesByFilm loads the categories of several films in one query.
// Every requested film gets a non-nil slice.
func (r *CatalogRepo) categoriesByFilm(ctx context.Context, filmIDs []uint64) (map[uint64][]model.Category, error) {
	out := make(map[uint64][]model.Category, len(filmIDs))
	for _, id := range filmIDs {
		out[id] = []model.Category{}
	}
	rows, err := r.query(ctx, `SELECT fc.film_id, c.category_id, c.name, c.last_update
		FROM film_category fc JOIN category c ON c.category_id = fc.category_id
		WHERE fc.film_id IN (`+placeholders(len(filmIDs))+`)
		ORDER BY c.name`, uint64s(filmIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			filmID uint64
			c      model.Category
			name   string
			upd    time.Time
		)
		if err := rows.Scan(&filmID, &c.ID, &name, &upd); err != nil {
			return nil, err
		}
		c.Name = model.CategoryName(strings.TrimSpace(name))
		c.LastUpdate = ts(upd)
		out[filmID] = append(out[filmID], c)
	}
	return out, rows.Err()
}
