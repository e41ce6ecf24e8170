package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/zizaimai/rental-manager/internal/model"
)

// GetCustomer returns one customer with their address, rental history
// (newest first, each with the rented film title) and payments.
func (r *CatalogRepo) GetCustomer(ctx context.Context, id uint64) (model.Customer, error) {
	c, err := r.customer(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}

	addr, err := r.address(ctx, c.AddressID)
	if err != nil {
		return model.Customer{}, err
	}
	c.Address = model.Some(addr)

	rows, err := r.query(ctx, "SELECT "+rentalListColumns+rentalListJoins+
		" WHERE r.customer_id = ? ORDER BY r.rental_date DESC, r.rental_id DESC", id)
	if err != nil {
		return model.Customer{}, err
	}
	defer rows.Close()
	rentals := []model.Rental{}
	for rows.Next() {
		rt, err := scanRentalRow(rows)
		if err != nil {
			return model.Customer{}, err
		}
		// The customer is the page subject; do not repeat it on every row.
		rt.Customer = model.None[model.Customer]()
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return model.Customer{}, err
	}
	c.Rentals = model.Some(rentals)

	payments, err := r.payments(ctx, "p.customer_id = ?", id)
	if err != nil {
		return model.Customer{}, err
	}
	c.Payments = model.Some(payments)
	return c, nil
}

// customer loads the customer row alone.
func (r *CatalogRepo) customer(ctx context.Context, id uint64) (model.Customer, error) {
	var (
		c          model.Customer
		email      sql.NullString
		active     sql.NullInt64
		createDate time.Time
		upd        sql.NullTime
	)
	err := r.queryRow(ctx, `SELECT c.customer_id, c.store_id, c.first_name, c.last_name, c.email,
		c.address_id, `+r.d.activeBool+`, c.create_date, c.last_update, c.active
		FROM customer c WHERE c.customer_id = ?`, id).
		Scan(&c.ID, &c.StoreID, &c.FirstName, &c.LastName, &email,
			&c.AddressID, &c.ActiveBool, &createDate, &upd, &active)
	if err != nil {
		return model.Customer{}, notFound(err)
	}
	c.Email = email.String
	c.Active = int(active.Int64)
	c.CreateDate = ts(createDate)
	if upd.Valid {
		c.LastUpdate = ts(upd.Time)
	}
	c.FullName = c.FirstName + " " + c.LastName
	return c, nil
}

// address loads one address row.
func (r *CatalogRepo) address(ctx context.Context, id uint64) (model.Address, error) {
	var (
		a        model.Address
		address2 sql.NullString
		postal   sql.NullString
		upd      time.Time
	)
	err := r.queryRow(ctx, `SELECT address_id, address, address2, district, city_id, postal_code, phone, last_update
		FROM address WHERE address_id = ?`, id).
		Scan(&a.ID, &a.Address, &address2, &a.District, &a.CityID, &postal, &a.Phone, &upd)
	if err != nil {
		return model.Address{}, notFound(err)
	}
	a.Address2 = optString(address2)
	a.PostalCode = postal.String
	a.LastUpdate = ts(upd)
	return a, nil
}
