package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/model"
    "github.com/workora/job-board-gateway/internal/session"
)

// AuthHandler bundles the two session managers: Site owns the user/company
// credential cookie, Admin owns the back-office one.  They are separate
// managers because the cookies, and therefore the sessions, are
// independent; an admin reviewing the site as a user holds both.
type AuthHandler struct {
    Site  *session.Manager
    Admin *session.Manager
}

func NewAuthHandler(site, admin *session.Manager) *AuthHandler {
    return &AuthHandler{Site: site, Admin: admin}
}

// ----- DTOs -----

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type sessionResp struct {
    State string           `json:"state"`
    User  *model.Principal `json:"user,omitempty"`
}

func toResp(s session.Session) sessionResp {
    return sessionResp{State: s.State.String(), User: s.Principal}
}

// Login handles POST /v1/auth/login for job-seeker accounts.
func (h *AuthHandler) Login(c echo.Context) error {
    return h.login(c, h.Site, model.RoleUser)
}

// CompanyLogin handles POST /v1/auth/company/login for employer accounts.
func (h *AuthHandler) CompanyLogin(c echo.Context) error {
    return h.login(c, h.Site, model.RoleCompany)
}

// AdminLogin handles POST /v1/admin/login.  The credential lands in the
// admin cookie, not the site one.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
    return h.login(c, h.Admin, model.RoleAdmin)
}

func (h *AuthHandler) login(c echo.Context, m *session.Manager, role model.Role) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
    }

    sess, err := m.Login(c, role, req.Email, req.Password)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, toResp(sess))
}

// Logout handles POST /v1/auth/logout: clear the credential, discard the
// principal, send the browser back to the public landing page.  No
// upstream call is made; the bearer credential is stateless.
func (h *AuthHandler) Logout(c echo.Context) error {
    h.Site.Logout(c)
    return c.Redirect(http.StatusFound, "/")
}

// AdminLogout handles POST /v1/admin/logout.
func (h *AuthHandler) AdminLogout(c echo.Context) error {
    h.Admin.Logout(c)
    return c.Redirect(http.StatusFound, "/admin/login")
}

// Session handles GET /v1/session: the resolved bootstrap outcome for this
// request.  The UI calls it on load instead of guessing from cookies.
func (h *AuthHandler) Session(c echo.Context) error {
    return c.JSON(http.StatusOK, toResp(middleware.CurrentSession(c)))
}

// Refresh handles POST /v1/session/refresh, re-running the authenticated
// branch after a profile edit so the principal reflects the update.
func (h *AuthHandler) Refresh(c echo.Context) error {
    sess := h.Site.Refresh(c)
    if !sess.Authenticated() {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
    }
    return c.JSON(http.StatusOK, toResp(sess))
}
