package middleware

// edge.go holds the reverse-proxy-level gates that run before any handler
// or session bootstrap: the admin route gate and the maintenance switch.
// Both work from the raw cookie alone, without a profile fetch: their
// job is to route traffic cheaply, not to authenticate it.  Full
// authentication still happens behind them.

import (
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/auth"
    "github.com/workora/job-board-gateway/internal/model"
    "github.com/workora/job-board-gateway/internal/token"
)

// AdminGate redirects requests for admin routes that do not carry a valid,
// unexpired admin credential to the admin login page.  The login page
// itself is exempt, otherwise no one could ever log in.
func AdminGate(store *token.Store, loginPath string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Path() == loginPath || c.Request().URL.Path == loginPath {
                return next(c)
            }
            if !hasValidCredential(store, c, model.RoleAdmin) {
                if wantsHTML(c) {
                    return c.Redirect(http.StatusFound, loginPath)
                }
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "admin authentication required"})
            }
            return next(c)
        }
    }
}

// Maintenance redirects all non-admin traffic to the maintenance page when
// the maintenance flag cookie is set.  Admin routes stay reachable so the
// flag can be turned off again, and the maintenance page itself is exempt
// to avoid a redirect loop.
func Maintenance(flagCookie, maintenancePath string, adminPrefixes ...string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            path := c.Request().URL.Path
            if path == maintenancePath {
                return next(c)
            }
            for _, p := range adminPrefixes {
                if strings.HasPrefix(path, p) {
                    return next(c)
                }
            }
            ck, err := c.Cookie(flagCookie)
            if err != nil || ck == nil {
                return next(c)
            }
            switch ck.Value {
            case "1", "true", "on":
                if wantsHTML(c) {
                    return c.Redirect(http.StatusFound, maintenancePath)
                }
                return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "maintenance in progress"})
            }
            return next(c)
        }
    }
}

// hasValidCredential checks presence, decodability, role and expiry of the
// stored credential without calling upstream.
func hasValidCredential(store *token.Store, c echo.Context, role model.Role) bool {
    tok := store.Get(c)
    if tok == "" {
        return false
    }
    claims, err := auth.Decode(tok)
    if err != nil || claims.Role != role {
        return false
    }
    return !claims.Expired(time.Now())
}
