package route

import (
	"fmt"
	"strconv"
	"strings"
)

// Match is the outcome of resolving a path.  Params holds the raw captured
// segments; Props holds them parsed as integers for routes declared with
// Props.  A param whose digits overflow uint64 is left out of Props.
type Match struct {
	Route  Route
	Params map[string]string
	Props  map[string]uint64
}

// Uint returns the named param as an integer, preferring the parsed prop.
func (m Match) Uint(name string) (uint64, bool) {
	if v, ok := m.Props[name]; ok {
		return v, true
	}
	raw, ok := m.Params[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

type compiledRoute struct {
	route Route
	segs  []segment
}

// Table is a compiled, immutable route table.  It is safe for concurrent use.
type Table struct {
	routes []compiledRoute
}

// NewTable compiles routes in order.  Duplicate names are rejected.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{routes: make([]compiledRoute, 0, len(routes))}
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		if r.Name == "" {
			return nil, fmt.Errorf("route: pattern %q has no name", r.Pattern)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("route: duplicate route name %q", r.Name)
		}
		seen[r.Name] = true
		segs, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, err
		}
		t.routes = append(t.routes, compiledRoute{route: r, segs: segs})
	}
	return t, nil
}

// MustTable is NewTable for static tables; it panics on a bad declaration.
func MustTable(routes []Route) *Table {
	t, err := NewTable(routes)
	if err != nil {
		panic(err)
	}
	return t
}

// Default compiles the page route table.
func Default() *Table { return MustTable(Routes) }

// Resolve returns the first route whose pattern matches path.  It reports
// false when nothing matches, including when a constrained param rejects its
// segment.
func (t *Table) Resolve(path string) (Match, bool) {
	parts, ok := splitPath(path)
	if !ok {
		return Match{}, false
	}
	for _, cr := range t.routes {
		params, ok := matchSegments(cr.segs, parts)
		if !ok {
			continue
		}
		m := Match{Route: cr.route, Params: params}
		if cr.route.Props && len(params) > 0 {
			m.Props = make(map[string]uint64, len(params))
			for k, v := range params {
				if n, err := strconv.ParseUint(v, 10, 64); err == nil {
					m.Props[k] = n
				}
			}
		}
		return m, true
	}
	return Match{}, false
}

// Routes returns a copy of the declarations in match order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	for i, cr := range t.routes {
		out[i] = cr.route
	}
	return out
}

// StripBase removes the deployment base path from a request path.  It
// reports false when path lies outside base.  The base compares
// case-insensitively, like the route literals.  An empty base or "/" leaves
// the path untouched.
func StripBase(base, path string) (string, bool) {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		if path == "" {
			return "/", true
		}
		return path, true
	}
	if strings.EqualFold(path, base) {
		return "/", true
	}
	if len(path) <= len(base) || path[len(base)] != '/' || !strings.EqualFold(path[:len(base)], base) {
		return "", false
	}
	return path[len(base):], true
}
