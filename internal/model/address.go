package model

// Address is a postal address referenced by customers and staff.
type Address struct {
	ID         uint64           `json:"id" validate:"gt=0"`
	Address    string           `json:"address"`
	Address2   Optional[string] `json:"address2,omitzero"`
	CityID     uint64           `json:"city_id"`
	District   string           `json:"district"`
	LastUpdate Timestamp        `json:"last_update"`
	Phone      string           `json:"phone"`
	PostalCode string           `json:"postal_code"`
}
