// Package events defines the messages exchanged over the product event queue.
package events

import "time"

// ProductUpserted is published after every successful product save and
// consumed by the index worker to keep the search index in sync.
type ProductUpserted struct {
	EventID    string    `json:"event_id"`
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}
