package middleware // middleware provides shared request processing for handlers

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/model"
    "github.com/workora/job-board-gateway/internal/session"
)

// sessionContextKey is where the resolved session lives in the Echo
// context.  Handlers read it via CurrentSession and never write it; the
// session manager is the single writer.
const sessionContextKey = "session"

// CurrentSession returns the session resolved for this request.  Before
// Resolve has run (or on public routes without it) the zero Session is
// returned, whose state is idle and never authenticated.
func CurrentSession(c echo.Context) session.Session {
    if v := c.Get(sessionContextKey); v != nil {
        if s, ok := v.(session.Session); ok {
            return s
        }
    }
    return session.Session{}
}

// Resolve runs the bootstrap once per request and stashes the outcome in
// the context.  It never blocks a request on its own: anonymous requests
// pass through, which lets public routes personalize when a session happens
// to exist.
func Resolve(m *session.Manager) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            c.Set(sessionContextKey, m.Bootstrap(c))
            return next(c)
        }
    }
}

// RequireSession guards a protected route.  The bootstrap has already
// settled by the time this runs (Resolve precedes it in the chain), so
// there is no window where protected content could be emitted for an
// undetermined session.  Anonymous visitors are redirected to the login
// page on navigation requests and get a 401 on API requests, which keeps
// fetch callers out of redirect loops.
func RequireSession(loginPath string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if CurrentSession(c).Authenticated() {
                return next(c)
            }
            if wantsHTML(c) {
                return c.Redirect(http.StatusFound, loginPath)
            }
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
        }
    }
}

// RequireRole enforces that the session principal has one of the given
// roles.  It assumes RequireSession has already run.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            s := CurrentSession(c)
            if !s.Authenticated() || !allowed[s.Principal.Role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// RedirectAuthenticated sends an already-authenticated session away from a
// login page to its default destination.
func RedirectAuthenticated(target string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if CurrentSession(c).Authenticated() && wantsHTML(c) {
                return c.Redirect(http.StatusFound, target)
            }
            return next(c)
        }
    }
}

// wantsHTML distinguishes browser navigations from fetch/XHR traffic so
// guards can redirect the former and return JSON errors to the latter.
func wantsHTML(c echo.Context) bool {
    return strings.Contains(c.Request().Header.Get("Accept"), "text/html")
}
