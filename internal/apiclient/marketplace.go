package apiclient

import (
    "context"
    "net/http"

    "github.com/workora/job-board-gateway/internal/model"
)

// ServiceInput is the payload for creating or updating a marketplace
// listing.
type ServiceInput struct {
    Title       string `json:"title,omitempty"`
    Description string `json:"description,omitempty"`
    Category    string `json:"category,omitempty"`
    PriceCents  int    `json:"price_cents,omitempty"`
}

type orderReq struct {
    ServiceID string `json:"service_id"`
}

type deliverReq struct {
    DeliveryURL string `json:"delivery_url"`
}

type rejectReq struct {
    Reason string `json:"reason,omitempty"`
}

// ListServices fetches the public marketplace catalog.
func (c *Client) ListServices(ctx context.Context, tok string) ([]model.ServiceListing, error) {
    raw, err := c.get(ctx, "/marketplace/services", tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.ServiceListing](raw)
}

// GetService fetches one listing by id.
func (c *Client) GetService(ctx context.Context, tok, id string) (*model.ServiceListing, error) {
    raw, err := c.get(ctx, "/marketplace/services/"+id, tok)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.ServiceListing](raw)
}

// CreateService publishes a new listing for the authenticated freelancer.
func (c *Client) CreateService(ctx context.Context, tok string, in ServiceInput) (*model.ServiceListing, error) {
    raw, err := c.send(ctx, "POST", "/marketplace/services", tok, in, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.ServiceListing](raw)
}

// UpdateService patches an existing listing.
func (c *Client) UpdateService(ctx context.Context, tok, id string, in ServiceInput) (*model.ServiceListing, error) {
    raw, err := c.send(ctx, "PATCH", "/marketplace/services/"+id, tok, in, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.ServiceListing](raw)
}

// DeleteService removes a listing.
func (c *Client) DeleteService(ctx context.Context, tok, id string) error {
    _, err := c.send(ctx, "DELETE", "/marketplace/services/"+id, tok, nil, nil)
    return err
}

// CreateOrder places an order for a listing.  The idempotency key travels
// as a header so a resubmitted form cannot double-create the order even
// though POSTs are never retried by the transport.
func (c *Client) CreateOrder(ctx context.Context, tok, serviceID, idempotencyKey string) (*model.Order, error) {
    hdr := http.Header{}
    if idempotencyKey != "" {
        hdr.Set("Idempotency-Key", idempotencyKey)
    }
    raw, err := c.send(ctx, "POST", "/marketplace/orders", tok, orderReq{ServiceID: serviceID}, hdr)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Order](raw)
}

// MyOrders lists the orders visible to the authenticated account, as buyer
// or seller.
func (c *Client) MyOrders(ctx context.Context, tok string) ([]model.Order, error) {
    raw, err := c.get(ctx, "/marketplace/orders", tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.Order](raw)
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, tok, id string) (*model.Order, error) {
    raw, err := c.get(ctx, "/marketplace/orders/"+id, tok)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Order](raw)
}

// DeliverOrder attaches a delivery artifact and marks the order delivered.
func (c *Client) DeliverOrder(ctx context.Context, tok, id, deliveryURL string) (*model.Order, error) {
    raw, err := c.send(ctx, "POST", "/marketplace/orders/"+id+"/deliver", tok, deliverReq{DeliveryURL: deliveryURL}, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Order](raw)
}

// AcceptDelivery completes the order; escrow release happens upstream.
func (c *Client) AcceptDelivery(ctx context.Context, tok, id string) (*model.Order, error) {
    raw, err := c.send(ctx, "POST", "/marketplace/orders/"+id+"/accept", tok, nil, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Order](raw)
}

// RejectDelivery sends the order back to the seller for another round.
func (c *Client) RejectDelivery(ctx context.Context, tok, id, reason string) (*model.Order, error) {
    raw, err := c.send(ctx, "POST", "/marketplace/orders/"+id+"/reject", tok, rejectReq{Reason: reason}, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Order](raw)
}
