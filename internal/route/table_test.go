package route

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_StaticPaths(t *testing.T) {
	table := Default()
	cases := map[string]View{
		"/":       ViewHome,
		"/film":   ViewFilmList,
		"/actor":  ViewActorList,
		"/rental": ViewRentalList,
	}
	for path, view := range cases {
		m, ok := table.Resolve(path)
		require.True(t, ok, path)
		assert.Equal(t, view, m.Route.View, path)
		assert.Empty(t, m.Params, path)
		assert.Empty(t, m.Props, path)
	}
}

func TestResolve_FilmDetailDigits(t *testing.T) {
	table := Default()
	for _, d := range []string{"0", "1", "42", "007", "1000", "18446744073709551615"} {
		m, ok := table.Resolve("/film/" + d)
		require.True(t, ok, d)
		assert.Equal(t, ViewFilmDetail, m.Route.View)
		assert.Equal(t, d, m.Params["id"])

		want, err := strconv.ParseUint(d, 10, 64)
		require.NoError(t, err)
		got, ok := m.Uint("id")
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, want, m.Props["id"])
		assert.Equal(t, "Film - Rental Manager - zizaimai", TitleFor("zizaimai")(&m.Route))
	}
}

func TestResolve_RejectsNonDigitParams(t *testing.T) {
	table := Default()
	for _, s := range []string{"abc", "12a", "-1", "1.5", "+3", " 1", "١٢"} {
		for _, prefix := range []string{"/film/", "/actor/", "/rental/", "/customer/"} {
			_, ok := table.Resolve(prefix + s)
			assert.False(t, ok, prefix+s)
		}
	}
}

func TestResolve_OverflowingIDMatchesWithoutProp(t *testing.T) {
	m, ok := Default().Resolve("/film/99999999999999999999999")
	require.True(t, ok)
	assert.Equal(t, ViewFilmDetail, m.Route.View)
	_, ok = m.Uint("id")
	assert.False(t, ok)
}

func TestResolve_OnlyFilmDetailHasProps(t *testing.T) {
	table := Default()

	m, ok := table.Resolve("/actor/12")
	require.True(t, ok)
	assert.Equal(t, ViewActorDetail, m.Route.View)
	assert.Equal(t, "12", m.Params["actorId"])
	assert.Nil(t, m.Props)
	id, ok := m.Uint("actorId")
	assert.True(t, ok)
	assert.Equal(t, uint64(12), id)

	m, ok = table.Resolve("/customer/7")
	require.True(t, ok)
	assert.Equal(t, ViewCustomerDetail, m.Route.View)
	assert.Nil(t, m.Props)
}

func TestResolve_UnmatchedPaths(t *testing.T) {
	table := Default()
	for _, p := range []string{"/customer", "/films", "/film/1/extra", "/payment/3", "//film", "/film//1"} {
		_, ok := table.Resolve(p)
		assert.False(t, ok, p)
	}
}

func TestResolve_TrailingSlashAndCase(t *testing.T) {
	table := Default()

	m, ok := table.Resolve("/film/")
	require.True(t, ok)
	assert.Equal(t, ViewFilmList, m.Route.View)

	m, ok = table.Resolve("/Rental/5")
	require.True(t, ok)
	assert.Equal(t, ViewRentalDetail, m.Route.View)
}

func TestResolve_Idempotent(t *testing.T) {
	table := Default()
	first, ok := table.Resolve("/rental/42")
	require.True(t, ok)
	second, ok := table.Resolve("/rental/42")
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, Routes, table.Routes())
}

func TestResolve_FirstMatchWins(t *testing.T) {
	table := MustTable([]Route{
		{Name: "numeric", Pattern: `/item/:id(\d+)`, View: "numeric"},
		{Name: "any", Pattern: "/item/:slug", View: "any"},
	})

	m, ok := table.Resolve("/item/12")
	require.True(t, ok)
	assert.Equal(t, View("numeric"), m.Route.View)

	m, ok = table.Resolve("/item/twelve")
	require.True(t, ok)
	assert.Equal(t, View("any"), m.Route.View)
	assert.Equal(t, "twelve", m.Params["slug"])
}

func TestNewTable_RejectsBadDeclarations(t *testing.T) {
	bad := [][]Route{
		{{Name: "", Pattern: "/x"}},
		{{Name: "a", Pattern: "/x"}, {Name: "a", Pattern: "/y"}},
		{{Name: "a", Pattern: "x"}},
		{{Name: "a", Pattern: "/x/:id(\\d+"}},
		{{Name: "a", Pattern: "/x/:(\\d+)"}},
		{{Name: "a", Pattern: "/x/:id([)"}},
	}
	for _, routes := range bad {
		_, err := NewTable(routes)
		assert.Error(t, err, routes[len(routes)-1].Pattern)
	}
}

func TestStripBase(t *testing.T) {
	cases := []struct {
		base, path string
		want       string
		ok         bool
	}{
		{"/demo/dvdrental", "/demo/dvdrental", "/", true},
		{"/demo/dvdrental", "/demo/dvdrental/", "/", true},
		{"/demo/dvdrental", "/demo/dvdrental/film/12", "/film/12", true},
		{"/demo/dvdrental", "/Demo/DVDRental/film/abc", "/film/abc", true},
		{"/demo/dvdrental", "/DEMO/DVDRENTAL", "/", true},
		{"/demo/dvdrental", "/demo/dvdrentals/film", "", false},
		{"/demo/dvdrental", "/demo", "", false},
		{"/demo/dvdrental", "/elsewhere", "", false},
		{"", "/film", "/film", true},
		{"/", "", "/", true},
	}
	for _, tc := range cases {
		got, ok := StripBase(tc.base, tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}
