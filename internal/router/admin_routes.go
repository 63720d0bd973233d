package router

import (
    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/handler"
    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/model"
    "github.com/workora/job-board-gateway/internal/token"
)

// RegisterAdmin wires the back-office.  Login and logout sit outside the
// gated group: login must be reachable without a credential, and logout
// must work even when the stored credential has already expired.  The
// gated group layers the edge gate (cheap cookie check, redirect to the
// admin login page) in front of the full session chain.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, admin *handler.AdminHandler, adminStore *token.Store, resolve, limiter echo.MiddlewareFunc) {
    e.POST("/v1/admin/login", a.AdminLogin, limiter)
    e.POST("/v1/admin/logout", a.AdminLogout)

    // The admin login page: an already-authenticated admin is sent to the
    // dashboard instead.
    e.GET("/admin/login", adminLoginPage, resolve, middleware.RedirectAuthenticated("/admin"))

    g := e.Group("/v1/admin",
        middleware.AdminGate(adminStore, "/admin/login"),
        resolve,
        middleware.RequireSession("/admin/login"),
        middleware.RequireRole(model.RoleAdmin))

    g.GET("/users", admin.Users)
    g.POST("/users/:id/block", admin.BlockUser)
    g.POST("/users/:id/unblock", admin.UnblockUser)

    g.GET("/jobs", admin.Jobs)
    g.POST("/jobs/:id/approve", admin.ApproveJob)
    g.DELETE("/jobs/:id", admin.RemoveJob)

    g.GET("/stats", admin.Stats)
}

func adminLoginPage(c echo.Context) error {
    return c.JSON(200, echo.Map{"page": "admin-login"})
}
