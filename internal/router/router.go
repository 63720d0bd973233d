// Package router defines how HTTP routes are registered for the gateway.
// Registration is split by audience: public browse, site auth, user,
// company and admin.  Middleware chains are assembled by the caller (main)
// and passed in, so the route table stays readable in one place per area.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/handler"
    "github.com/workora/job-board-gateway/internal/middleware"
)

// RegisterRoutes registers the routes every deployment has regardless of
// feature flags: the health check and the maintenance page the edge
// middleware redirects to.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
    e.GET("/maintenance", handler.Maintenance)
}

// RegisterAuth wires the session lifecycle endpoints.  The login endpoints
// sit behind the rate limiter; they are the only surface accepting
// secrets.  resolve runs the bootstrap so GET /v1/session reflects the
// stored credential, and the login pages redirect already-authenticated
// visitors to their destination instead of showing a form.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, resolve, limiter echo.MiddlewareFunc) {
    e.POST("/v1/auth/login", a.Login, limiter)
    e.POST("/v1/auth/company/login", a.CompanyLogin, limiter)
    e.POST("/v1/auth/logout", a.Logout)

    e.GET("/v1/session", a.Session, resolve)
    e.POST("/v1/session/refresh", a.Refresh, resolve)

    // The login page itself: an authenticated visitor has no business
    // here and is sent to the landing page.
    e.GET("/login", loginPage, resolve, middleware.RedirectAuthenticated("/"))
}

// RegisterPublic registers the unauthenticated browse endpoints: the job
// board and the marketplace catalog.  resolve still runs so a stored
// credential is forwarded upstream for personalization; browseCache serves
// anonymous traffic from Redis.
func RegisterPublic(e *echo.Echo, jobs *handler.JobHandler, mkt *handler.MarketplaceHandler, resolve, browseCache echo.MiddlewareFunc) {
    e.GET("/v1/jobs", jobs.List, browseCache, resolve)
    e.GET("/v1/jobs/:id", jobs.Get, browseCache, resolve)
    e.GET("/v1/marketplace/services", mkt.Services, browseCache, resolve)
    e.GET("/v1/marketplace/services/:id", mkt.Service, browseCache, resolve)
}

func loginPage(c echo.Context) error {
    return c.JSON(200, echo.Map{"page": "login"})
}
