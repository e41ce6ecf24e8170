package model

// Page is one page of a list result.  Total counts every matching record,
// not only the ones in Items.
type Page[T any] struct {
	Items    []T `json:"items" validate:"dive"`
	Total    int `json:"total" validate:"gte=0"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Pages returns the number of pages needed to show Total records.
func (p Page[T]) Pages() int {
	if p.PageSize <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.Pages() }
