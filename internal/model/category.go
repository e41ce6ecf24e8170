package model

// CategoryName is the closed set of film genres in the catalog.
type CategoryName string

const (
	CategoryAction      CategoryName = "Action"
	CategoryAnimation   CategoryName = "Animation"
	CategoryChildren    CategoryName = "Children"
	CategoryClassics    CategoryName = "Classics"
	CategoryComedy      CategoryName = "Comedy"
	CategoryDocumentary CategoryName = "Documentary"
	CategoryDrama       CategoryName = "Drama"
	CategoryFamily      CategoryName = "Family"
	CategoryForeign     CategoryName = "Foreign"
	CategoryGames       CategoryName = "Games"
	CategoryHorror      CategoryName = "Horror"
	CategoryMusic       CategoryName = "Music"
	CategoryNew         CategoryName = "New"
	CategorySciFi       CategoryName = "Sci-Fi"
	CategorySports      CategoryName = "Sports"
	CategoryTravel      CategoryName = "Travel"
)

// CategoryNames lists every category in alphabetical order.
var CategoryNames = []CategoryName{
	CategoryAction, CategoryAnimation, CategoryChildren, CategoryClassics,
	CategoryComedy, CategoryDocumentary, CategoryDrama, CategoryFamily,
	CategoryForeign, CategoryGames, CategoryHorror, CategoryMusic,
	CategoryNew, CategorySciFi, CategorySports, CategoryTravel,
}

// Valid reports whether n is a known category.
func (n CategoryName) Valid() bool {
	for _, c := range CategoryNames {
		if c == n {
			return true
		}
	}
	return false
}

// Category represents a row of the category table.
type Category struct {
	ID         uint64       `json:"category_id" validate:"gt=0"`
	Name       CategoryName `json:"name" validate:"category"`
	LastUpdate Timestamp    `json:"last_update"`
}
