// Package route holds the page route table of the rental manager and the
// function that matches request paths against it.  The table is plain data;
// matching lives in Table so declarations stay free of logic.
package route

// View identifies the page a route renders.
type View string

const (
	ViewHome           View = "home"
	ViewFilmList       View = "filmList"
	ViewFilmDetail     View = "filmDetail"
	ViewActorList      View = "actorList"
	ViewActorDetail    View = "actorDetail"
	ViewRentalList     View = "rentalList"
	ViewRentalDetail   View = "rentalDetail"
	ViewCustomerDetail View = "customerDetail"
)

// Route declares one page.  Pattern uses ":name" placeholders with an
// optional "(regexp)" constraint, e.g. "/film/:id(\\d+)".  When Props is set
// the matched params are also handed to the view parsed as integers.  Title
// is the fragment shown in front of the site title; empty means none.
type Route struct {
	Name    string
	Pattern string
	View    View
	Props   bool
	Title   string
}

// Routes is the page route table, in match order.
var Routes = []Route{
	{Name: "home", Pattern: "/", View: ViewHome},
	{Name: "film", Pattern: "/film", View: ViewFilmList, Title: "Film List"},
	{Name: "filmDetail", Pattern: `/film/:id(\d+)`, View: ViewFilmDetail, Props: true, Title: "Film"},
	{Name: "actor", Pattern: "/actor", View: ViewActorList, Title: "Actor / Actress List"},
	{Name: "actorDetail", Pattern: `/actor/:actorId(\d+)`, View: ViewActorDetail, Title: "Actor / Actress"},
	{Name: "rental", Pattern: "/rental", View: ViewRentalList, Title: "Rental List"},
	{Name: "rentalDetail", Pattern: `/rental/:id(\d+)`, View: ViewRentalDetail, Title: "Rental"},
	{Name: "customerDetail", Pattern: `/customer/:id(\d+)`, View: ViewCustomerDetail, Title: "Customer"},
}
