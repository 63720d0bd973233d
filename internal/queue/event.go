// Package queue defines message payloads exchanged over the message broker.
package queue

// NotificationEvent is published by the core platform whenever something a
// user should hear about happens: a chat message on one of their orders, a
// delivery, or a delivery acceptance.  It carries enough to render a feed
// entry without querying the core API.
type NotificationEvent struct {
    ID        string `json:"id"`
    Type      string `json:"type"` // chat.message | order.delivered | order.accepted
    UserID    string `json:"user_id"`
    OrderID   string `json:"order_id,omitempty"`
    Message   string `json:"message"`
    CreatedAt string `json:"created_at"`
}
