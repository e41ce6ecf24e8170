package model

// Actor is a performer credited on one or more films.
type Actor struct {
	ID         uint64           `json:"actor_id" validate:"gt=0"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	LastUpdate Timestamp        `json:"last_update"`
	FilmCount  int              `json:"film_count"`
	Films      Optional[[]Film] `json:"films,omitzero" validate:"omitempty,dive"`
}

// FullName joins the first and last name.
func (a Actor) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
