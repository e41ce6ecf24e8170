package model

// Film is a title in the rental catalog.
//
// Fields:
//
//	ID              – film.film_id.
//	Description     – may be absent for older titles.
//	RentalRate      – price of one rental period.
//	RentalDuration  – length of one rental period in days.
//	ReplacementCost – charged when a copy is lost.
//	Length          – running time in minutes.
//	SpecialFeatures – e.g. "Trailers", "Deleted Scenes".
//	Fulltext        – search document maintained by the database.
//	Language        – embedded when the backend joins it.
//	Categories      – embedded when the backend joins them.
//	CastCount       – number of actors credited.
type Film struct {
	ID              uint64               `json:"film_id" validate:"gt=0"`
	Title           string               `json:"title"`
	Description     Optional[string]     `json:"description,omitzero"`
	ReleaseYear     int                  `json:"release_year"`
	RentalRate      float64              `json:"rental_rate" validate:"gte=0"`
	RentalDuration  int                  `json:"rental_duration"`
	ReplacementCost float64              `json:"replacement_cost" validate:"gte=0"`
	Length          int                  `json:"length"`
	LanguageID      uint64               `json:"language_id"`
	Rating          Rating               `json:"rating" validate:"rating"`
	SpecialFeatures []string             `json:"special_features"`
	LastUpdate      Timestamp            `json:"last_update"`
	Fulltext        string               `json:"fulltext"`
	Language        Optional[Language]   `json:"language,omitzero"`
	Categories      Optional[[]Category] `json:"categories,omitzero" validate:"omitempty,dive"`
	CastCount       int                  `json:"cast_count"`
}

// CategoryNames returns the names of the embedded categories, or nil when the
// backend did not include them.
func (f Film) CategoryNames() []CategoryName {
	cats, ok := f.Categories.Get()
	if !ok {
		return nil
	}
	out := make([]CategoryName, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Name)
	}
	return out
}
