package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the gateway is running.  It does not
// probe the core API: the gateway is "up" even when upstream is degraded.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Maintenance renders the maintenance page the edge middleware redirects
// to while the maintenance flag is set.
func Maintenance(c echo.Context) error {
    return c.JSON(http.StatusServiceUnavailable, echo.Map{
        "status":  "maintenance",
        "message": "the site is temporarily down for maintenance",
    })
}
