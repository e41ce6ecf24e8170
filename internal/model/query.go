package model

// Paging bounds for list views.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListQuery selects one page of a list.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize clamps paging to the supported bounds.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset is the number of records before the selected page.
func (q ListQuery) Offset() int {
	q = q.Normalize()
	return (q.Page - 1) * q.PageSize
}

// FilmQuery narrows the film list.  Unknown ratings and categories are
// dropped by Normalize rather than sent on.
type FilmQuery struct {
	ListQuery
	Rating     Rating
	Categories []CategoryName
}

// Normalize clamps paging and drops invalid filters.
func (q FilmQuery) Normalize() FilmQuery {
	q.ListQuery = q.ListQuery.Normalize()
	if q.Rating != "" && !q.Rating.Valid() {
		q.Rating = ""
	}
	if len(q.Categories) > 0 {
		kept := make([]CategoryName, 0, len(q.Categories))
		for _, c := range q.Categories {
			if c.Valid() {
				kept = append(kept, c)
			}
		}
		q.Categories = kept
	}
	return q
}
