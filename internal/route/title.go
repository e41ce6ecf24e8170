package route

// SiteName is the fixed part of every document title.
const SiteName = "Rental Manager"

// TitleFunc derives the document title for a matched route.  A nil route
// means no route matched.
type TitleFunc func(r *Route) string

// BaseTitle is the title used when there is no fragment to show.
func BaseTitle(owner string) string {
	return SiteName + " - " + owner
}

// DocumentTitle prefixes the route's title fragment, when it has one, to
// the base title.
func DocumentTitle(fragment, owner string) string {
	if fragment == "" {
		return BaseTitle(owner)
	}
	return fragment + " - " + BaseTitle(owner)
}

// TitleFor returns the TitleFunc for a site owner.
func TitleFor(owner string) TitleFunc {
	return func(r *Route) string {
		if r == nil {
			return BaseTitle(owner)
		}
		return DocumentTitle(r.Title, owner)
	}
}
