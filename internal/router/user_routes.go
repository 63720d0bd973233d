package router

import (
    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/handler"
    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/model"
)

// RegisterUser wires the authenticated job-seeker/freelancer surface:
// applying to jobs, tracking applications, the freelancer's own service
// listings, the order lifecycle and the notification feed.  notifs may be
// nil when Redis is unavailable; the feed routes are simply not mounted
// then.
func RegisterUser(e *echo.Echo, apps *handler.ApplicationHandler, mkt *handler.MarketplaceHandler, notifs *handler.NotificationHandler, resolve echo.MiddlewareFunc) {
    g := e.Group("/v1", resolve, middleware.RequireSession("/login"))

    user := g.Group("", middleware.RequireRole(model.RoleUser))
    user.POST("/jobs/:id/apply", apps.Apply)
    user.GET("/applications", apps.Mine)

    // Freelancer listings and the order flow.  Buyers and sellers are both
    // user-role accounts; ownership checks happen upstream where the order
    // record lives.
    user.POST("/marketplace/services", mkt.CreateService)
    user.PATCH("/marketplace/services/:id", mkt.UpdateService)
    user.DELETE("/marketplace/services/:id", mkt.DeleteService)
    user.POST("/marketplace/orders", mkt.CreateOrder)
    user.GET("/marketplace/orders", mkt.Orders)
    user.GET("/marketplace/orders/:id", mkt.Order)
    user.POST("/marketplace/orders/:id/deliver", mkt.Deliver)
    user.POST("/marketplace/orders/:id/accept", mkt.Accept)
    user.POST("/marketplace/orders/:id/reject", mkt.Reject)

    // The feed is open to users and companies alike.
    if notifs != nil {
        feed := g.Group("", middleware.RequireRole(model.RoleUser, model.RoleCompany))
        feed.GET("/notifications", notifs.List)
        feed.POST("/notifications/read", notifs.MarkRead)
    }
}
