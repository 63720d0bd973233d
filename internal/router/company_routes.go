package router

import (
    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/handler"
    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/model"
)

// RegisterCompany wires the employer surface: posting CRUD and applicant
// review.  Every route requires an authenticated company session.
func RegisterCompany(e *echo.Echo, jobs *handler.JobHandler, apps *handler.ApplicationHandler, resolve echo.MiddlewareFunc) {
    g := e.Group("/v1/company", resolve,
        middleware.RequireSession("/login"),
        middleware.RequireRole(model.RoleCompany))

    g.GET("/jobs", jobs.CompanyList)
    g.POST("/jobs", jobs.Create)
    g.PATCH("/jobs/:id", jobs.Update)
    g.POST("/jobs/:id/close", jobs.Close)
    g.DELETE("/jobs/:id", jobs.Delete)

    g.GET("/jobs/:id/applications", apps.ForJob)
    g.PATCH("/applications/:id", apps.UpdateStatus)
}
