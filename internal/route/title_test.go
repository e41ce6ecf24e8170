package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleFor_RegisteredRoutes(t *testing.T) {
	title := TitleFor("zizaimai")
	table := Default()
	cases := map[string]string{
		"/":           "Rental Manager - zizaimai",
		"/film":       "Film List - Rental Manager - zizaimai",
		"/film/1":     "Film - Rental Manager - zizaimai",
		"/actor":      "Actor / Actress List - Rental Manager - zizaimai",
		"/actor/3":    "Actor / Actress - Rental Manager - zizaimai",
		"/rental":     "Rental List - Rental Manager - zizaimai",
		"/rental/42":  "Rental - Rental Manager - zizaimai",
		"/customer/7": "Customer - Rental Manager - zizaimai",
	}
	for path, want := range cases {
		m, ok := table.Resolve(path)
		require.True(t, ok, path)
		assert.Equal(t, want, title(&m.Route), path)
	}
}

func TestTitleFor_NoRoute(t *testing.T) {
	assert.Equal(t, "Rental Manager - zizaimai", TitleFor("zizaimai")(nil))
	assert.Equal(t, "Rental Manager - acme", TitleFor("acme")(nil))
}
