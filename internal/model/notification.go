package model

import "time"

// Notification is a single entry in a user's unread feed.  Entries are
// produced by the platform's broker events (chat messages, order delivery,
// delivery acceptance) and drained when the user opens the feed.
type Notification struct {
    ID        string    `json:"id"`
    UserID    string    `json:"user_id"`
    Kind      string    `json:"kind"`
    OrderID   string    `json:"order_id,omitempty"`
    Message   string    `json:"message"`
    CreatedAt time.Time `json:"created_at"`
}

// Notification kinds matching the broker event types.
const (
    NotificationChatMessage       = "chat.message"
    NotificationOrderDelivered    = "order.delivered"
    NotificationDeliveryAccepted  = "order.accepted"
)

// AdminStats is the back-office dashboard summary served by the core API.
type AdminStats struct {
    TotalUsers        int `json:"total_users"`
    TotalCompanies    int `json:"total_companies"`
    TotalJobs         int `json:"total_jobs"`
    PendingJobs       int `json:"pending_jobs"`
    TotalApplications int `json:"total_applications"`
    OpenOrders        int `json:"open_orders"`
    BlockedUsers      int `json:"blocked_users"`
}
