package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/apiclient"
    "github.com/workora/job-board-gateway/internal/middleware"
)

// AdminHandler serves the back-office: user moderation, job moderation and
// the dashboard stats.  Moderation mutations refetch the affected list
// after the upstream confirms instead of patching a local copy, so the
// table and the stats can never drift apart.
type AdminHandler struct {
    API *apiclient.Client
}

func NewAdminHandler(api *apiclient.Client) *AdminHandler {
    return &AdminHandler{API: api}
}

// Users handles GET /v1/admin/users.
func (h *AdminHandler) Users(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    users, err := h.API.AdminListUsers(c.Request().Context(), sess.Token)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": users})
}

// BlockUser handles POST /v1/admin/users/:id/block.
func (h *AdminHandler) BlockUser(c echo.Context) error {
    return h.moderateUser(c, h.API.BlockUser)
}

// UnblockUser handles POST /v1/admin/users/:id/unblock.
func (h *AdminHandler) UnblockUser(c echo.Context) error {
    return h.moderateUser(c, h.API.UnblockUser)
}

func (h *AdminHandler) moderateUser(c echo.Context, action func(ctx context.Context, tok, id string) error) error {
    ctx := c.Request().Context()
    sess := middleware.CurrentSession(c)
    if err := action(ctx, sess.Token, c.Param("id")); err != nil {
        return respondError(c, err)
    }
    users, err := h.API.AdminListUsers(ctx, sess.Token)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": users})
}

// Jobs handles GET /v1/admin/jobs, optionally filtered by ?status=.
func (h *AdminHandler) Jobs(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    jobs, err := h.API.AdminListJobs(c.Request().Context(), sess.Token, c.QueryParam("status"))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": jobs})
}

// ApproveJob handles POST /v1/admin/jobs/:id/approve; the moderation queue
// is refetched after the mutation.
func (h *AdminHandler) ApproveJob(c echo.Context) error {
    ctx := c.Request().Context()
    sess := middleware.CurrentSession(c)
    if err := h.API.ApproveJob(ctx, sess.Token, c.Param("id")); err != nil {
        return respondError(c, err)
    }
    jobs, err := h.API.AdminListJobs(ctx, sess.Token, c.QueryParam("status"))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": jobs})
}

// RemoveJob handles DELETE /v1/admin/jobs/:id.
func (h *AdminHandler) RemoveJob(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    if err := h.API.RemoveJob(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
        return respondError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/admin/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    stats, err := h.API.Stats(c.Request().Context(), sess.Token)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, stats)
}
