package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/apiclient"
    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/model"
)

// ApplicationHandler covers both sides of the application lifecycle: the
// user applying and tracking status badges, and the company reviewing and
// advancing applications.
type ApplicationHandler struct {
    API *apiclient.Client
}

func NewApplicationHandler(api *apiclient.Client) *ApplicationHandler {
    return &ApplicationHandler{API: api}
}

type applyBody struct {
    CoverLetter string `json:"cover_letter"`
}

type statusBody struct {
    Status string `json:"status"`
}

// Apply handles POST /v1/jobs/:id/apply on behalf of the authenticated
// user.
func (h *ApplicationHandler) Apply(c echo.Context) error {
    var body applyBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    sess := middleware.CurrentSession(c)
    app, err := h.API.Apply(c.Request().Context(), sess.Token, c.Param("id"), strings.TrimSpace(body.CoverLetter))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusCreated, app)
}

// Mine handles GET /v1/applications: the user's applications with their
// current status badges.
func (h *ApplicationHandler) Mine(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    apps, err := h.API.MyApplications(c.Request().Context(), sess.Token)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": apps})
}

// ForJob handles GET /v1/company/jobs/:id/applications: everyone who
// applied to one of the company's postings.
func (h *ApplicationHandler) ForJob(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    apps, err := h.API.JobApplications(c.Request().Context(), sess.Token, c.Param("id"))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": apps})
}

// UpdateStatus handles PATCH /v1/company/applications/:id.  The requested
// transition is validated against the lifecycle before the upstream call
// so an impossible move fails fast without a round-trip.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
    var body statusBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    to := strings.ToLower(strings.TrimSpace(body.Status))
    switch to {
    case model.ApplicationStatusShortlisted, model.ApplicationStatusAccepted, model.ApplicationStatusRejected:
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }

    ctx := c.Request().Context()
    sess := middleware.CurrentSession(c)

    current, err := h.API.GetApplication(ctx, sess.Token, c.Param("id"))
    if err != nil {
        return respondError(c, err)
    }
    if !model.ValidApplicationTransition(current.Status, to) {
        return c.JSON(http.StatusConflict, echo.Map{
            "error": "cannot move application from " + current.Status + " to " + to,
        })
    }

    app, err := h.API.UpdateApplicationStatus(ctx, sess.Token, c.Param("id"), to)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, app)
}
