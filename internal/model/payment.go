package model

// Payment is money received against a rental.
type Payment struct {
	ID          uint64             `json:"id" validate:"gt=0"`
	Amount      float64            `json:"amount" validate:"gte=0"`
	CustomerID  uint64             `json:"customer_id"`
	PaymentDate Timestamp          `json:"payment_date"`
	RentalID    uint64             `json:"rental_id"`
	StaffID     uint64             `json:"staff_id"`
	Customer    Optional[Customer] `json:"customer,omitzero"`
	Staff       Optional[Staff]    `json:"staff,omitzero"`
	Rental      Optional[Rental]   `json:"rental,omitzero"`
}
