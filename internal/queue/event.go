// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them.
package queue

// NavigationQueueName is the durable queue page views are published to.
const NavigationQueueName = "navigation.viewed"

// NavigationEvent is published after every page render.  It carries what a
// downstream consumer needs to audit console usage without touching the
// catalog.
type NavigationEvent struct {
	Path      string `json:"path"`
	Route     string `json:"route,omitempty"` // empty when no route matched
	Title     string `json:"title"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
	ViewedAt  string `json:"viewed_at"` // RFC 3339, UTC
}
