package model

// Customer is a store member who rents films.
//
// Active mirrors the legacy integer column while ActiveBool is the boolean
// column that replaced it; the backend sends both.
type Customer struct {
	ID         uint64              `json:"id" validate:"gt=0"`
	Active     int                 `json:"active"`
	ActiveBool bool                `json:"activebool"`
	AddressID  uint64              `json:"address_id"`
	CreateDate Timestamp           `json:"create_date"`
	Email      string              `json:"email"`
	LastName   string              `json:"last_name"`
	FirstName  string              `json:"first_name"`
	FullName   string              `json:"full_name"`
	LastUpdate Timestamp           `json:"last_update"`
	StoreID    uint64              `json:"store_id"`
	Address    Optional[Address]   `json:"address,omitzero"`
	Payments   Optional[[]Payment] `json:"payments,omitzero" validate:"omitempty,dive"`
	Rentals    Optional[[]Rental]  `json:"rentals,omitzero" validate:"omitempty,dive"`
}

// DisplayName prefers the backend supplied full name.
func (c Customer) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
