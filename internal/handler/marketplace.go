package handler

import (
    "net/http"
    "strings"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/apiclient"
    "github.com/workora/job-board-gateway/internal/middleware"
)

// MarketplaceHandler serves the freelance marketplace: service listings,
// orders and the delivery flow.  Escrow and payment are upstream concerns;
// the gateway only relays the explicit buyer/seller actions and always
// shows the server-confirmed order state.
type MarketplaceHandler struct {
    API *apiclient.Client
}

func NewMarketplaceHandler(api *apiclient.Client) *MarketplaceHandler {
    return &MarketplaceHandler{API: api}
}

type orderBody struct {
    ServiceID string `json:"service_id"`
}

type deliverBody struct {
    DeliveryURL string `json:"delivery_url"`
}

type rejectBody struct {
    Reason string `json:"reason"`
}

// Services handles GET /v1/marketplace/services, the public catalog.
func (h *MarketplaceHandler) Services(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    items, err := h.API.ListServices(c.Request().Context(), sess.Token)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Service handles GET /v1/marketplace/services/:id.
func (h *MarketplaceHandler) Service(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    item, err := h.API.GetService(c.Request().Context(), sess.Token, c.Param("id"))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, item)
}

// CreateService handles POST /v1/marketplace/services for freelancers.
func (h *MarketplaceHandler) CreateService(c echo.Context) error {
    var in apiclient.ServiceInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(in.Title) == "" || in.PriceCents <= 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and positive price required"})
    }
    sess := middleware.CurrentSession(c)
    item, err := h.API.CreateService(c.Request().Context(), sess.Token, in)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusCreated, item)
}

// UpdateService handles PATCH /v1/marketplace/services/:id.
func (h *MarketplaceHandler) UpdateService(c echo.Context) error {
    var in apiclient.ServiceInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    sess := middleware.CurrentSession(c)
    item, err := h.API.UpdateService(c.Request().Context(), sess.Token, c.Param("id"), in)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, item)
}

// DeleteService handles DELETE /v1/marketplace/services/:id.
func (h *MarketplaceHandler) DeleteService(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    if err := h.API.DeleteService(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
        return respondError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /v1/marketplace/orders.  Every order creation
// carries an idempotency key, either the browser's or a fresh UUID, so a
// double-submitted form cannot double-charge.
func (h *MarketplaceHandler) CreateOrder(c echo.Context) error {
    var body orderBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if body.ServiceID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id required"})
    }
    key := c.Request().Header.Get("Idempotency-Key")
    if key == "" {
        key = uuid.NewString()
    }
    sess := middleware.CurrentSession(c)
    order, err := h.API.CreateOrder(c.Request().Context(), sess.Token, body.ServiceID, key)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusCreated, order)
}

// Orders handles GET /v1/marketplace/orders.
func (h *MarketplaceHandler) Orders(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    orders, err := h.API.MyOrders(c.Request().Context(), sess.Token)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": orders})
}

// Order handles GET /v1/marketplace/orders/:id.
func (h *MarketplaceHandler) Order(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    order, err := h.API.GetOrder(c.Request().Context(), sess.Token, c.Param("id"))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, order)
}

// Deliver handles POST /v1/marketplace/orders/:id/deliver (seller side).
func (h *MarketplaceHandler) Deliver(c echo.Context) error {
    var body deliverBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(body.DeliveryURL) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "delivery_url required"})
    }
    sess := middleware.CurrentSession(c)
    order, err := h.API.DeliverOrder(c.Request().Context(), sess.Token, c.Param("id"), body.DeliveryURL)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, order)
}

// Accept handles POST /v1/marketplace/orders/:id/accept (buyer side).
// After the upstream confirms, the order is refetched so the response
// reflects the server's final state, including anything escrow release
// changed, rather than an optimistic local patch.
func (h *MarketplaceHandler) Accept(c echo.Context) error {
    ctx := c.Request().Context()
    sess := middleware.CurrentSession(c)
    if _, err := h.API.AcceptDelivery(ctx, sess.Token, c.Param("id")); err != nil {
        return respondError(c, err)
    }
    order, err := h.API.GetOrder(ctx, sess.Token, c.Param("id"))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, order)
}

// Reject handles POST /v1/marketplace/orders/:id/reject (buyer side),
// sending the order back for another delivery round.
func (h *MarketplaceHandler) Reject(c echo.Context) error {
    var body rejectBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    sess := middleware.CurrentSession(c)
    order, err := h.API.RejectDelivery(c.Request().Context(), sess.Token, c.Param("id"), body.Reason)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, order)
}
