package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/apiclient"
    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/model"
)

// JobHandler serves the public job board and the company's posting CRUD.
type JobHandler struct {
    API *apiclient.Client
}

func NewJobHandler(api *apiclient.Client) *JobHandler {
    return &JobHandler{API: api}
}

// List handles GET /v1/jobs.  Query parameters q, category and location
// filter the board; filtering runs here so every consumer gets identical
// semantics regardless of which envelope the core API answered with.
func (h *JobHandler) List(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    jobs, err := h.API.ListJobs(c.Request().Context(), sess.Token)
    if err != nil {
        return respondError(c, err)
    }

    filter := model.JobFilter{
        Query:    c.QueryParam("q"),
        Category: c.QueryParam("category"),
        Location: c.QueryParam("location"),
    }
    out := make([]model.Job, 0, len(jobs))
    for _, j := range jobs {
        if filter.Matches(j) {
            out = append(out, j)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/jobs/:id.
func (h *JobHandler) Get(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    job, err := h.API.GetJob(c.Request().Context(), sess.Token, c.Param("id"))
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, job)
}

// CompanyList handles GET /v1/company/jobs: the authenticated company's
// own postings, including unapproved and closed ones.
func (h *JobHandler) CompanyList(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    jobs, err := h.API.CompanyJobs(c.Request().Context(), sess.Token)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": jobs})
}

// Create handles POST /v1/company/jobs.
func (h *JobHandler) Create(c echo.Context) error {
    var in apiclient.JobInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/description required"})
    }
    if in.SalaryMin < 0 || in.SalaryMax < 0 || (in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid salary range"})
    }

    sess := middleware.CurrentSession(c)
    job, err := h.API.CreateJob(c.Request().Context(), sess.Token, in)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusCreated, job)
}

// Update handles PATCH /v1/company/jobs/:id.
func (h *JobHandler) Update(c echo.Context) error {
    var in apiclient.JobInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    sess := middleware.CurrentSession(c)
    job, err := h.API.UpdateJob(c.Request().Context(), sess.Token, c.Param("id"), in)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, job)
}

// Close handles POST /v1/company/jobs/:id/close, a shorthand PATCH that
// stops new applications without deleting the posting.
func (h *JobHandler) Close(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    job, err := h.API.UpdateJob(c.Request().Context(), sess.Token, c.Param("id"),
        apiclient.JobInput{Status: model.JobStatusClosed})
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /v1/company/jobs/:id.
func (h *JobHandler) Delete(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    if err := h.API.DeleteJob(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
        return respondError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
