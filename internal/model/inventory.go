package model

// Inventory is one physical copy of a film held by a store.
type Inventory struct {
	ID         uint64         `json:"id" validate:"gt=0"`
	FilmID     uint64         `json:"film_id"`
	Film       Optional[Film] `json:"film,omitzero"`
	LastUpdate Timestamp      `json:"last_update"`
	StoreID    uint64         `json:"store_id"`
}
