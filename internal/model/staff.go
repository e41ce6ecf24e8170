package model

// Staff is an employee who processes rentals and payments.  Password carries
// the stored credential exactly as the backend sends it; views never render
// it.
type Staff struct {
	ID         uint64            `json:"id" validate:"gt=0"`
	Active     bool              `json:"active"`
	AddressID  uint64            `json:"address_id"`
	Email      string            `json:"email"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	LastUpdate Timestamp         `json:"last_update"`
	Password   string            `json:"password"`
	StoreID    uint64            `json:"store_id"`
	Username   string            `json:"username"`
	Address    Optional[Address] `json:"address,omitzero"`
}

// FullName joins the first and last name.
func (s Staff) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
