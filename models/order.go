package models

import "time"

// Order statuses used by the remote service.
const (
	OrderStatusCreated = "created"
	OrderStatusPending = "pending"
	OrderStatusDone    = "done"
)

// Order mirrors an order as the remote service reports it. Orders are born
// and die server-side; the client never fabricates an identity or number.
type Order struct {
	ID          string    `json:"_id"`
	Ingredients []string  `json:"ingredients"`
	Status      string    `json:"status"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Number      int       `json:"number"`
}

// FeedPage is one snapshot of the public order feed together with the
// running totals the service maintains.
type FeedPage struct {
	Orders     []Order
	Total      int
	TotalToday int
}
