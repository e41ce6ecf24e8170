// Package repository reads the dvdrental catalog straight from the
// database.  It serves the same views as the backend API client and returns
// the same entity shapes, with relations embedded the way the API embeds
// them.
package repository

import "errors"

// ErrNotFound is returned when the requested row does not exist.  Handlers
// translate it into the not-found view.
var ErrNotFound = errors.New("repository: not found")
