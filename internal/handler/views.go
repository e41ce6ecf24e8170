package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zizaimai/rental-manager/internal/model"
	"github.com/zizaimai/rental-manager/internal/route"
	"github.com/zizaimai/rental-manager/internal/utils"
)

// field is one labelled value on a detail page.
type field struct {
	Label string
	Value string
}

func newField(key string, value any) field {
	return field{Label: utils.SnakeToCapitalizedWords(key), Value: fmt.Sprint(value)}
}

// pager links the neighbouring pages of a list, keeping the other query
// params.
type pager struct {
	Page, Pages, Total int
	PrevURL, NextURL   string
}

func newPager[T any](c echo.Context, p model.Page[T]) pager {
	pg := pager{Page: p.Page, Pages: p.Pages(), Total: p.Total}
	if p.HasPrev() {
		pg.PrevURL = pageURL(c, p.Page-1)
	}
	if p.HasNext() {
		pg.NextURL = pageURL(c, p.Page+1)
	}
	return pg
}

func pageURL(c echo.Context, page int) string {
	v := url.Values{}
	for k, vals := range c.QueryParams() {
		v[k] = append([]string(nil), vals...)
	}
	v.Set("page", strconv.Itoa(page))
	return c.Request().URL.Path + "?" + v.Encode()
}

func listQuery(c echo.Context) model.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	return model.ListQuery{
		Page:     page,
		PageSize: size,
		Search:   strings.TrimSpace(c.QueryParam("search")),
	}.Normalize()
}

func filmQuery(c echo.Context) model.FilmQuery {
	q := model.FilmQuery{
		ListQuery: listQuery(c),
		Rating:    model.Rating(c.QueryParam("rating")),
	}
	for _, name := range c.QueryParams()["category"] {
		q.Categories = append(q.Categories, model.CategoryName(name))
	}
	return q.Normalize()
}

func entityID(m route.Match, name string) (uint64, error) {
	id, ok := m.Uint(name)
	if !ok {
		return 0, errBadID
	}
	return id, nil
}

type homeData struct {
	Links []field
}

// home links every titled route that takes no params.
func (h *PageHandler) home(echo.Context, route.Match) (any, error) {
	var links []field
	for _, r := range h.Table.Routes() {
		if r.Title == "" || strings.Contains(r.Pattern, ":") {
			continue
		}
		links = append(links, field{Label: r.Title, Value: r.Pattern})
	}
	return homeData{Links: links}, nil
}

type filmListData struct {
	Query      model.FilmQuery
	Films      []model.Film
	Pager      pager
	Ratings    []model.Rating
	Categories []model.CategoryName
	Selected   map[model.CategoryName]bool
}

func (h *PageHandler) filmList(c echo.Context, _ route.Match) (any, error) {
	q := filmQuery(c)
	p, err := h.Catalog.ListFilms(c.Request().Context(), q)
	if err != nil {
		return nil, err
	}
	selected := make(map[model.CategoryName]bool, len(q.Categories))
	for _, name := range q.Categories {
		selected[name] = true
	}
	return filmListData{
		Query:      q,
		Films:      p.Items,
		Pager:      newPager(c, p),
		Ratings:    model.Ratings,
		Categories: model.CategoryNames,
		Selected:   selected,
	}, nil
}

type filmDetailData struct {
	Film        model.Film
	Description string
	Language    string
	Categories  []model.CategoryName
	Fields      []field
}

func (h *PageHandler) filmDetail(c echo.Context, m route.Match) (any, error) {
	id, err := entityID(m, "id")
	if err != nil {
		return nil, err
	}
	f, err := h.Catalog.GetFilm(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	d := filmDetailData{
		Film:        f,
		Description: f.Description.OrElse(""),
		Categories:  f.CategoryNames(),
		Fields: []field{
			newField("release_year", f.ReleaseYear),
			newField("rating", f.Rating),
			newField("length", fmt.Sprintf("%d min", f.Length)),
			newField("rental_rate", money(f.RentalRate)),
			newField("rental_duration", fmt.Sprintf("%d days", f.RentalDuration)),
			newField("replacement_cost", money(f.ReplacementCost)),
			newField("special_features", strings.Join(f.SpecialFeatures, ", ")),
			newField("cast_count", f.CastCount),
			newField("last_update", f.LastUpdate.DateTime()),
		},
	}
	if lang, ok := f.Language.Get(); ok {
		d.Language = string(lang.Name)
	}
	return d, nil
}

type actorListData struct {
	Query  model.ListQuery
	Actors []model.Actor
	Pager  pager
}

func (h *PageHandler) actorList(c echo.Context, _ route.Match) (any, error) {
	q := listQuery(c)
	p, err := h.Catalog.ListActors(c.Request().Context(), q)
	if err != nil {
		return nil, err
	}
	return actorListData{Query: q, Actors: p.Items, Pager: newPager(c, p)}, nil
}

type actorDetailData struct {
	Actor model.Actor
	Films []model.Film
	// FilmsKnown is false when the catalog did not include the films.
	FilmsKnown bool
}

func (h *PageHandler) actorDetail(c echo.Context, m route.Match) (any, error) {
	id, err := entityID(m, "actorId")
	if err != nil {
		return nil, err
	}
	a, err := h.Catalog.GetActor(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	films, known := a.Films.Get()
	return actorDetailData{Actor: a, Films: films, FilmsKnown: known}, nil
}

// rentalRow flattens the optional relations of a rental for list tables.
type rentalRow struct {
	ID         uint64
	Film       string
	Customer   string
	CustomerID uint64
	RentalDate string
	ReturnDate string
	Returned   bool
}

func newRentalRow(r model.Rental) rentalRow {
	row := rentalRow{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		RentalDate: r.RentalDate.DateTime(),
		Returned:   r.Returned(),
	}
	if title, ok := r.FilmTitle(); ok {
		row.Film = title
	}
	if cust, ok := r.Customer.Get(); ok {
		row.Customer = cust.DisplayName()
	}
	if ret, ok := r.ReturnDate.Get(); ok {
		row.ReturnDate = ret.DateTime()
	}
	return row
}

func rentalRows(rs []model.Rental) []rentalRow {
	out := make([]rentalRow, 0, len(rs))
	for _, r := range rs {
		out = append(out, newRentalRow(r))
	}
	return out
}

type rentalListData struct {
	Query   model.ListQuery
	Rentals []rentalRow
	Pager   pager
}

func (h *PageHandler) rentalList(c echo.Context, _ route.Match) (any, error) {
	q := listQuery(c)
	p, err := h.Catalog.ListRentals(c.Request().Context(), q)
	if err != nil {
		return nil, err
	}
	return rentalListData{Query: q, Rentals: rentalRows(p.Items), Pager: newPager(c, p)}, nil
}

type rentalDetailData struct {
	Row      rentalRow
	FilmID   uint64
	Staff    string
	Fields   []field
	Payments []model.Payment
	Paid     string
}

func (h *PageHandler) rentalDetail(c echo.Context, m route.Match) (any, error) {
	id, err := entityID(m, "id")
	if err != nil {
		return nil, err
	}
	r, err := h.Catalog.GetRental(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	d := rentalDetailData{
		Row: newRentalRow(r),
		Fields: []field{
			newField("inventory_id", r.InventoryID),
			newField("staff_id", r.StaffID),
			newField("last_update", r.LastUpdate.DateTime()),
		},
	}
	if inv, ok := r.Inventory.Get(); ok {
		d.FilmID = inv.FilmID
		d.Fields = append(d.Fields, newField("store_id", inv.StoreID))
	}
	if s, ok := r.Staff.Get(); ok {
		d.Staff = s.FullName()
	}
	if ps, ok := r.Payments.Get(); ok {
		d.Payments = ps
	}
	if paid, ok := r.AmountPaid(); ok {
		d.Paid = money(paid)
	}
	return d, nil
}

type customerDetailData struct {
	Customer model.Customer
	Fields   []field
	Address  []field
	Rentals  []rentalRow
	Payments []model.Payment
}

func (h *PageHandler) customerDetail(c echo.Context, m route.Match) (any, error) {
	id, err := entityID(m, "id")
	if err != nil {
		return nil, err
	}
	cust, err := h.Catalog.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	active := "no"
	if cust.ActiveBool {
		active = "yes"
	}
	d := customerDetailData{
		Customer: cust,
		Fields: []field{
			newField("email", cust.Email),
			newField("store_id", cust.StoreID),
			newField("active", active),
			newField("create_date", cust.CreateDate.Date()),
			newField("last_update", cust.LastUpdate.DateTime()),
		},
	}
	if a, ok := cust.Address.Get(); ok {
		d.Address = []field{
			newField("address", a.Address),
			newField("address2", a.Address2.OrElse("")),
			newField("district", a.District),
			newField("postal_code", a.PostalCode),
			newField("phone", a.Phone),
		}
	}
	if rs, ok := cust.Rentals.Get(); ok {
		d.Rentals = rentalRows(rs)
	}
	if ps, ok := cust.Payments.Get(); ok {
		d.Payments = ps
	}
	return d, nil
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }
