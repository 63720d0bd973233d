package model

import "time"

// ServiceListing is a freelancer's marketplace offering.  Listings are
// browsable by anyone; ordering requires an authenticated user session.
type ServiceListing struct {
    ID          string    `json:"id"`
    Title       string    `json:"title"`
    Description string    `json:"description"`
    Category    string    `json:"category,omitempty"`
    PriceCents  int       `json:"price_cents"`
    SellerID    string    `json:"seller_id"`
    SellerName  string    `json:"seller_name,omitempty"`
    CreatedAt   time.Time `json:"created_at"`
}

// Order tracks a marketplace purchase through its delivery lifecycle.
// Escrow and payment live entirely in the core platform; the gateway only
// displays the current state and forwards the explicit buyer/seller actions
// (deliver, accept, reject).
//
// Fields:
//  ID          - identifier assigned by the core API.
//  ServiceID   - the listing that was ordered.
//  BuyerID     - purchasing user account.
//  SellerID    - freelancer fulfilling the order.
//  PriceCents  - agreed price in cents at order time.
//  Status      - lifecycle state, see the OrderStatus* constants.
//  DeliveryURL - artifact link attached by the seller on delivery.
//  CreatedAt   - order creation timestamp.
//  UpdatedAt   - last lifecycle change.
type Order struct {
    ID          string    `json:"id"`
    ServiceID   string    `json:"service_id"`
    BuyerID     string    `json:"buyer_id"`
    SellerID    string    `json:"seller_id"`
    PriceCents  int       `json:"price_cents"`
    Status      string    `json:"status"`
    DeliveryURL string    `json:"delivery_url,omitempty"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}

// Order lifecycle states.  The seller moves in_progress -> delivered; the
// buyer then accepts (completing the order and releasing escrow upstream)
// or rejects (returning it to in_progress for another delivery round).
const (
    OrderStatusPending    = "pending"
    OrderStatusInProgress = "in_progress"
    OrderStatusDelivered  = "delivered"
    OrderStatusCompleted  = "completed"
    OrderStatusCancelled  = "cancelled"
)
