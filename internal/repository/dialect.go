package repository

import (
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between the PostgreSQL dvdrental
// schema and its MySQL (Sakila) ancestor.  Expressions assume the aliases
// used throughout this package: f for film, c for customer.
type Dialect struct {
	Name string

	dollarParams    bool
	like            string
	rating          string
	specialFeatures string
	fulltext        string
	activeBool      string
}

// Postgres targets the dvdrental sample database.
var Postgres = Dialect{
	Name:            "postgres",
	dollarParams:    true,
	like:            "ILIKE",
	rating:          "COALESCE(f.rating::text, '')",
	specialFeatures: "COALESCE(array_to_string(f.special_features, ','), '')",
	fulltext:        "COALESCE(f.fulltext::text, '')",
	activeBool:      "c.activebool",
}

// MySQL targets the Sakila sample database.  Sakila has no fulltext column,
// so the title and description stand in for it.
var MySQL = Dialect{
	Name:            "mysql",
	like:            "LIKE",
	rating:          "COALESCE(f.rating, '')",
	specialFeatures: "COALESCE(f.special_features, '')",
	fulltext:        "CONCAT_WS(' ', f.title, f.description)",
	activeBool:      "(c.active = 1)",
}

// DialectFor returns the dialect for a configured driver name.
func DialectFor(driver string) (Dialect, bool) {
	switch driver {
	case "postgres":
		return Postgres, true
	case "mysql":
		return MySQL, true
	}
	return Dialect{}, false
}

// Rebind rewrites "?" placeholders into the dialect's form.  Queries in this
// package never contain a literal question mark.
func (d Dialect) Rebind(q string) string {
	if !d.dollarParams {
		return q
	}
	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for i := 0; i < len(q); i++ {
		if q[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(q[i])
	}
	return b.String()
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// splitFeatures turns the comma joined special_features value into a slice.
func splitFeatures(s string) []string {
	s = strings.Trim(s, "{}")
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(strings.TrimSpace(p), `"`); p != "" {
			out = append(out, p)
		}
	}
	return out
}
