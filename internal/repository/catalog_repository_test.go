package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizaimai/rental-manager/internal/model"
)

var (
	updated = time.Date(2013, 5, 26, 14, 50, 58, 0, time.UTC)
	rented  = time.Date(2005, 5, 24, 22, 53, 30, 0, time.UTC)
)

var filmCols = []string{
	"film_id", "title", "description", "release_year", "rental_rate",
	"rental_duration", "replacement_cost", "length", "language_id",
	"rating", "special_features", "last_update", "fulltext",
	"language_name", "language_last_update", "cast_count",
}

var rentalCols = []string{
	"rental_id", "rental_date", "inventory_id", "customer_id", "return_date",
	"staff_id", "last_update",
	"first_name", "last_name", "email",
	"film_id", "store_id", "inventory_last_update",
	"title",
}

func newMockRepo(t *testing.T, d Dialect) (*CatalogRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCatalogRepo(db, d), mock
}

// ph returns the regexp for the n-th placeholder of d.
func ph(d Dialect, n int) string {
	if d.dollarParams {
		return `\$` + strconv.Itoa(n)
	}
	return `\?`
}

func filmRow() *sqlmock.Rows {
	return sqlmock.NewRows(filmCols).AddRow(
		int64(1), "ACADEMY DINOSAUR", "An Epic Drama", int64(2006), 0.99,
		int64(6), 20.99, int64(86), int64(1),
		"PG", "Deleted Scenes,Behind the Scenes", updated, "'academi':1",
		"English", updated, int64(10),
	)
}

func categoryRows(filmID int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"film_id", "category_id", "name", "last_update"}).
		AddRow(filmID, int64(6), "Documentary", updated).
		AddRow(filmID, int64(7), "Drama ", updated)
}

func TestCatalogRepo_GetFilm(t *testing.T) {
	repo, mock := newMockRepo(t, MySQL)
	mock.ExpectQuery(`FROM film f JOIN language l ON l\.language_id = f\.language_id WHERE f\.film_id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(filmRow())
	mock.ExpectQuery(`FROM film_category fc JOIN category c .* WHERE fc\.film_id IN \(\?\)`).
		WithArgs(int64(1)).
		WillReturnRows(categoryRows(1))

	f, err := repo.GetFilm(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, uint64(1), f.ID)
	assert.Equal(t, "ACADEMY DINOSAUR", f.Title)
	assert.Equal(t, model.Some("An Epic Drama"), f.Description)
	assert.Equal(t, 2006, f.ReleaseYear)
	assert.Equal(t, 0.99, f.RentalRate)
	assert.Equal(t, 6, f.RentalDuration)
	assert.Equal(t, 20.99, f.ReplacementCost)
	assert.Equal(t, 86, f.Length)
	assert.Equal(t, model.RatingPG, f.Rating)
	assert.Equal(t, []string{"Deleted Scenes", "Behind the Scenes"}, f.SpecialFeatures)
	assert.Equal(t, updated, f.LastUpdate.Time)
	assert.Equal(t, 10, f.CastCount)

	lang, ok := f.Language.Get()
	require.True(t, ok)
	assert.Equal(t, uint64(1), lang.ID)
	assert.Equal(t, model.LanguageEnglish, lang.Name)

	assert.Equal(t, []model.CategoryName{model.CategoryDocumentary, model.CategoryDrama}, f.CategoryNames())
	assert.NoError(t, model.Validate(f))
}

func TestCatalogRepo_NotFound(t *testing.T) {
	for _, d := range []Dialect{MySQL, Postgres} {
		t.Run(d.Name, func(t *testing.T) {
			cases := []struct {
				name  string
				query string
				call  func(r *CatalogRepo) error
			}{
				{"film", `FROM film f JOIN language l .* WHERE f\.film_id = ` + ph(d, 1), func(r *CatalogRepo) error {
					_, err := r.GetFilm(context.Background(), 7)
					return err
				}},
				{"rental", `FROM rental r .* WHERE r\.rental_id = ` + ph(d, 1), func(r *CatalogRepo) error {
					_, err := r.GetRental(context.Background(), 7)
					return err
				}},
				{"customer", `FROM customer c WHERE c\.customer_id = ` + ph(d, 1), func(r *CatalogRepo) error {
					_, err := r.GetCustomer(context.Background(), 7)
					return err
				}},
				{"actor", `FROM actor WHERE actor_id = ` + ph(d, 1), func(r *CatalogRepo) error {
					_, err := r.GetActor(context.Background(), 7)
					return err
				}},
			}
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					repo, mock := newMockRepo(t, d)
					mock.ExpectQuery(tc.query).
						WithArgs(int64(7)).
						WillReturnRows(sqlmock.NewRows([]string{"id"}))

					err := tc.call(repo)
					assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
					assert.NoError(t, mock.ExpectationsWereMet())
				})
			}
		})
	}
}

func TestCatalogRepo_DatabaseErrorIsNotNotFound(t *testing.T) {
	repo, mock := newMockRepo(t, MySQL)
	mock.ExpectQuery(`FROM actor WHERE actor_id = \?`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetActor(context.Background(), 3)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestCatalogRepo_ListFilmsFilters(t *testing.T) {
	cases := []struct {
		d     Dialect
		where string
	}{
		{MySQL, `WHERE f\.title LIKE \? AND COALESCE\(f\.rating, ''\) = \? AND EXISTS \(.* IN \(\?, \?\)\)`},
		{Postgres, `WHERE f\.title ILIKE \$1 AND COALESCE\(f\.rating::text, ''\) = \$2 AND EXISTS \(.* IN \(\$3, \$4\)\)`},
	}
	for _, tc := range cases {
		t.Run(tc.d.Name, func(t *testing.T) {
			repo, mock := newMockRepo(t, tc.d)
			q := model.FilmQuery{
				ListQuery:  model.ListQuery{Page: 3, PageSize: 10, Search: "ace"},
				Rating:     model.RatingPG,
				Categories: []model.CategoryName{model.CategoryAction, model.CategoryDrama},
			}

			mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM film f `+tc.where+`$`).
				WithArgs("%ace%", "PG", "Action", "Drama").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(21)))
			mock.ExpectQuery(tc.where+` ORDER BY f\.title, f\.film_id LIMIT `+ph(tc.d, 5)+` OFFSET `+ph(tc.d, 6)+`$`).
				WithArgs("%ace%", "PG", "Action", "Drama", int64(10), int64(20)).
				WillReturnRows(filmRow())
			mock.ExpectQuery(`FROM film_category fc`).
				WithArgs(int64(1)).
				WillReturnRows(categoryRows(1))

			p, err := repo.ListFilms(context.Background(), q)
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())

			assert.Equal(t, 21, p.Total)
			assert.Equal(t, 3, p.Page)
			assert.Equal(t, 10, p.PageSize)
			require.Len(t, p.Items, 1)
			assert.Len(t, p.Items[0].CategoryNames(), 2)
		})
	}
}

func TestCatalogRepo_ListRentals(t *testing.T) {
	repo, mock := newMockRepo(t, Postgres)
	where := `WHERE \(f\.title ILIKE \$1 OR c\.first_name ILIKE \$2 OR c\.last_name ILIKE \$3\)`

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM rental r .* `+where+`$`).
		WithArgs("%mary%", "%mary%", "%mary%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(where+` ORDER BY r\.rental_date DESC, r\.rental_id DESC LIMIT \$4 OFFSET \$5$`).
		WithArgs("%mary%", "%mary%", "%mary%", int64(20), int64(0)).
		WillReturnRows(sqlmock.NewRows(rentalCols).
			AddRow(int64(1), rented, int64(367), int64(130), nil,
				int64(1), updated,
				"CHARLOTTE", "HUNTER", "charlotte.hunter@sakilacustomer.org",
				int64(80), int64(1), updated,
				"BLANKET BEVERLY").
			AddRow(int64(2), rented, int64(1525), int64(459), rented.Add(72*time.Hour),
				int64(1), updated,
				"TOMMY", "COLLAZO", nil,
				int64(333), int64(2), updated,
				"FREAKY POCUS"))

	p, err := repo.ListRentals(context.Background(), model.ListQuery{Search: "mary"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, p.Items, 2)

	first := p.Items[0]
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, rented, first.RentalDate.Time)
	assert.False(t, first.Returned())
	cust, ok := first.Customer.Get()
	require.True(t, ok)
	assert.Equal(t, "CHARLOTTE HUNTER", cust.DisplayName())
	title, ok := first.FilmTitle()
	require.True(t, ok)
	assert.Equal(t, "BLANKET BEVERLY", title)
	inv, _ := first.Inventory.Get()
	assert.Equal(t, uint64(367), inv.ID)
	assert.Equal(t, uint64(80), inv.FilmID)

	second := p.Items[1]
	assert.True(t, second.Returned())
	ret, _ := second.ReturnDate.Get()
	assert.Equal(t, rented.Add(72*time.Hour), ret.Time)
}
