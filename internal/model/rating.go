package model

// Rating is the MPAA rating of a film.
type Rating string

const (
	RatingG    Rating = "G"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG-13"
	RatingR    Rating = "R"
	RatingNC17 Rating = "NC-17"
)

// Ratings lists every rating in ascending order of restriction.
var Ratings = []Rating{RatingG, RatingPG, RatingPG13, RatingR, RatingNC17}

// Valid reports whether r is one of the known ratings.
func (r Rating) Valid() bool {
	switch r {
	case RatingG, RatingPG, RatingPG13, RatingR, RatingNC17:
		return true
	}
	return false
}
