package route

import (
	"fmt"
	"regexp"
	"strings"
)

// segment is one compiled path segment: a literal or a named parameter with
// an optional constraint.
type segment struct {
	literal    string
	param      string
	constraint *regexp.Regexp
}

func (s segment) isParam() bool { return s.param != "" }

// compilePattern splits a pattern into segments.  Constraints are anchored so
// they must consume the whole segment.
func compilePattern(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("route: pattern %q must start with /", pattern)
	}
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, "/")
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("route: pattern %q has an empty segment", pattern)
		}
		if !strings.HasPrefix(p, ":") {
			segs = append(segs, segment{literal: strings.ToLower(p)})
			continue
		}
		name, expr := p[1:], ""
		if i := strings.IndexByte(name, '('); i >= 0 {
			if !strings.HasSuffix(name, ")") {
				return nil, fmt.Errorf("route: pattern %q has an unterminated constraint", pattern)
			}
			name, expr = name[:i], name[i+1:len(name)-1]
		}
		if name == "" {
			return nil, fmt.Errorf("route: pattern %q has an unnamed parameter", pattern)
		}
		seg := segment{param: name}
		if expr != "" {
			re, err := regexp.Compile("^(?:" + expr + ")$")
			if err != nil {
				return nil, fmt.Errorf("route: pattern %q: %w", pattern, err)
			}
			seg.constraint = re
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// splitPath normalizes a request path into segments.  One trailing slash is
// ignored; empty inner segments ("//") never match anything.
func splitPath(path string) ([]string, bool) {
	if path == "" || path == "/" {
		return nil, true
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = strings.TrimSuffix(path[1:], "/")
	if path == "" {
		return nil, true
	}
	parts := strings.Split(path, "/")
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}
	return parts, true
}

// matchSegments matches path parts against compiled segments, returning the
// captured params.  Literals compare case-insensitively.
func matchSegments(segs []segment, parts []string) (map[string]string, bool) {
	if len(segs) != len(parts) {
		return nil, false
	}
	var params map[string]string
	for i, s := range segs {
		p := parts[i]
		if !s.isParam() {
			if !strings.EqualFold(s.literal, p) {
				return nil, false
			}
			continue
		}
		if s.constraint != nil && !s.constraint.MatchString(p) {
			return nil, false
		}
		if params == nil {
			params = make(map[string]string, 1)
		}
		params[s.param] = p
	}
	return params, true
}
