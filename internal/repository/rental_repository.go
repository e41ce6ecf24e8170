package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/zizaimai/rental-manager/internal/model"
)

// rentalListColumns selects a rental with the customer name and the rented
// film title, enough for one row of the rental list.
const rentalListColumns = `r.rental_id, r.rental_date, r.inventory_id, r.customer_id, r.return_date,
	r.staff_id, r.last_update,
	c.first_name, c.last_name, c.email,
	i.film_id, i.store_id, i.last_update,
	f.title`

const rentalListJoins = ` FROM rental r
	JOIN customer c ON c.customer_id = r.customer_id
	JOIN inventory i ON i.inventory_id = r.inventory_id
	JOIN film f ON f.film_id = i.film_id`

func scanRentalRow(sc interface{ Scan(...any) error }) (model.Rental, error) {
	var (
		rt              model.Rental
		rentalDate, upd time.Time
		returnDate      sql.NullTime
		first, last     string
		email           sql.NullString
		inv             model.Inventory
		invUpd          time.Time
		filmTitle       string
	)
	if err := sc.Scan(&rt.ID, &rentalDate, &rt.InventoryID, &rt.CustomerID, &returnDate,
		&rt.StaffID, &upd,
		&first, &last, &email,
		&inv.FilmID, &inv.StoreID, &invUpd,
		&filmTitle); err != nil {
		return model.Rental{}, err
	}
	rt.RentalDate = ts(rentalDate)
	rt.ReturnDate = optTime(returnDate)
	rt.LastUpdate = ts(upd)
	rt.Customer = model.Some(model.Customer{
		ID:        rt.CustomerID,
		FirstName: first,
		LastName:  last,
		FullName:  first + " " + last,
		Email:     email.String,
	})
	inv.ID = rt.InventoryID
	inv.LastUpdate = ts(invUpd)
	inv.Film = model.Some(model.Film{ID: inv.FilmID, Title: filmTitle})
	rt.Inventory = model.Some(inv)
	return rt, nil
}

// ListRentals returns one page of rentals, most recent first.  A search term
// matches the film title or the customer's names.
func (r *CatalogRepo) ListRentals(ctx context.Context, q model.ListQuery) (model.Page[model.Rental], error) {
	q = q.Normalize()
	where, args := "", []any{}
	if q.Search != "" {
		where = " WHERE (f.title " + r.d.like + " ? OR c.first_name " + r.d.like + " ? OR c.last_name " + r.d.like + " ?)"
		p := likePattern(q.Search)
		args = append(args, p, p, p)
	}

	total, err := r.count(ctx, "SELECT COUNT(*)"+rentalListJoins+where, args...)
	if err != nil {
		return model.Page[model.Rental]{}, err
	}

	rows, err := r.query(ctx, "SELECT "+rentalListColumns+rentalListJoins+where+
		" ORDER BY r.rental_date DESC, r.rental_id DESC LIMIT ? OFFSET ?",
		append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return model.Page[model.Rental]{}, err
	}
	defer rows.Close()

	var rentals []model.Rental
	for rows.Next() {
		rt, err := scanRentalRow(rows)
		if err != nil {
			return model.Page[model.Rental]{}, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return model.Page[model.Rental]{}, err
	}
	return page(rentals, total, q), nil
}

// GetRental returns one rental with its staff member, full customer record,
// the rented copy with its film, and its payments.
func (r *CatalogRepo) GetRental(ctx context.Context, id uint64) (model.Rental, error) {
	rt, err := scanRentalRow(r.queryRow(ctx, "SELECT "+rentalListColumns+rentalListJoins+" WHERE r.rental_id = ?", id))
	if err != nil {
		return model.Rental{}, notFound(err)
	}

	cust, err := r.customer(ctx, rt.CustomerID)
	if err != nil {
		return model.Rental{}, err
	}
	rt.Customer = model.Some(cust)

	staff, err := r.staff(ctx, rt.StaffID)
	if err != nil {
		return model.Rental{}, err
	}
	rt.Staff = model.Some(staff)

	inv, _ := rt.Inventory.Get()
	film, err := r.GetFilm(ctx, inv.FilmID)
	if err != nil {
		return model.Rental{}, err
	}
	inv.Film = model.Some(film)
	rt.Inventory = model.Some(inv)

	payments, err := r.payments(ctx, "p.rental_id = ?", rt.ID)
	if err != nil {
		return model.Rental{}, err
	}
	rt.Payments = model.Some(payments)
	return rt, nil
}

// staff loads one staff member with their address.
func (r *CatalogRepo) staff(ctx context.Context, id uint64) (model.Staff, error) {
	var (
		s        model.Staff
		email    sql.NullString
		password sql.NullString
		upd      time.Time
	)
	err := r.queryRow(ctx, `SELECT staff_id, first_name, last_name, address_id, email, store_id,
		active, username, password, last_update FROM staff WHERE staff_id = ?`, id).
		Scan(&s.ID, &s.FirstName, &s.LastName, &s.AddressID, &email, &s.StoreID,
			&s.Active, &s.Username, &password, &upd)
	if err != nil {
		return model.Staff{}, notFound(err)
	}
	s.Email = email.String
	s.Password = password.String
	s.LastUpdate = ts(upd)

	addr, err := r.address(ctx, s.AddressID)
	if err != nil {
		return model.Staff{}, err
	}
	s.Address = model.Some(addr)
	return s, nil
}

// payments loads the payments matching cond, oldest first.
func (r *CatalogRepo) payments(ctx context.Context, cond string, args ...any) ([]model.Payment, error) {
	rows, err := r.query(ctx, `SELECT p.payment_id, p.customer_id, p.staff_id, p.rental_id, p.amount, p.payment_date
		FROM payment p WHERE `+cond+` ORDER BY p.payment_date, p.payment_id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Payment{}
	for rows.Next() {
		var (
			p        model.Payment
			rentalID sql.NullInt64
			paidAt   time.Time
		)
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.StaffID, &rentalID, &p.Amount, &paidAt); err != nil {
			return nil, err
		}
		p.RentalID = uint64(rentalID.Int64)
		p.PaymentDate = ts(paidAt)
		out = append(out, p)
	}
	return out, rows.Err()
}
