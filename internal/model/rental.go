package model

// Rental records one copy of a film leaving a store with a customer.
//
// Fields:
//
//	RentalDate  – when the copy was handed out.
//	ReturnDate  – absent while the copy is still out.
//	Staff       – employee who processed the rental.
//	Customer    – renting customer.
//	Inventory   – copy rented, usually with its film embedded.
//	Payments    – payments applied to this rental.
type Rental struct {
	ID          uint64              `json:"id" validate:"gt=0"`
	CustomerID  uint64              `json:"customer_id"`
	InventoryID uint64              `json:"inventory_id"`
	LastUpdate  Timestamp           `json:"last_update"`
	RentalDate  Timestamp           `json:"rental_date"`
	ReturnDate  Optional[Timestamp] `json:"return_date,omitzero"`
	StaffID     uint64              `json:"staff_id"`
	Staff       Optional[Staff]     `json:"staff,omitzero"`
	Customer    Optional[Customer]  `json:"customer,omitzero"`
	Inventory   Optional[Inventory] `json:"inventory,omitzero"`
	Payments    Optional[[]Payment] `json:"payments,omitzero" validate:"omitempty,dive"`
}

// Returned reports whether the copy has come back.
func (r Rental) Returned() bool { return r.ReturnDate.IsPresent() }

// FilmTitle returns the title of the rented film when the inventory and its
// film are both embedded.
func (r Rental) FilmTitle() (string, bool) {
	inv, ok := r.Inventory.Get()
	if !ok {
		return "", false
	}
	f, ok := inv.Film.Get()
	if !ok {
		return "", false
	}
	return f.Title, true
}

// AmountPaid sums the embedded payments.  The second result is false when the
// payments were not included in the response.
func (r Rental) AmountPaid() (float64, bool) {
	ps, ok := r.Payments.Get()
	if !ok {
		return 0, false
	}
	var total float64
	for _, p := range ps {
		total += p.Amount
	}
	return total, true
}
