package token // package token persists the session credential as a browser cookie

import (
    "encoding/base64"
    "encoding/json"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/model"
)

// Store reads and writes one named credential cookie plus its companion
// profile-snapshot cookie.  The cookie is the single source of truth for
// "am I logged in": Get always re-reads the incoming request, never a
// cached copy, because other tabs and external redirects can change the
// stored value between requests.  Two Store instances exist in practice,
// one for the site credential and one for the admin credential.
type Store struct {
    Name         string // credential cookie name, e.g. "auth_token"
    SnapshotName string // profile snapshot cookie name, empty disables snapshots
    TTLDays      int    // cookie lifetime in days
    Secure       bool   // set the Secure attribute on written cookies
}

// Get returns the stored credential or "" when absent.  The literal strings
// "undefined" and "null" are remnants of client-side serialization bugs and
// are treated as absent rather than forwarded upstream as garbage.
func (s *Store) Get(c echo.Context) string {
    ck, err := c.Cookie(s.Name)
    if err != nil || ck == nil {
        return ""
    }
    v := ck.Value
    if v == "" || v == "undefined" || v == "null" {
        return ""
    }
    return v
}

// Set persists the credential with the configured multi-day expiry.  The
// credential cookie is HttpOnly: scripts never need the raw token, they get
// the snapshot cookie instead.
func (s *Store) Set(c echo.Context, credential string) {
    c.SetCookie(&http.Cookie{
        Name:     s.Name,
        Value:    credential,
        Path:     "/",
        Expires:  time.Now().Add(time.Duration(s.TTLDays) * 24 * time.Hour),
        MaxAge:   s.TTLDays * 24 * 60 * 60,
        HttpOnly: true,
        Secure:   s.Secure,
        SameSite: http.SameSiteLaxMode,
    })
}

// Clear expires the credential cookie and the snapshot cookie together.  A
// stale snapshot without a credential would paint a logged-in shell for an
// anonymous visitor.
func (s *Store) Clear(c echo.Context) {
    expire(c, s.Name, true, s.Secure)
    if s.SnapshotName != "" {
        expire(c, s.SnapshotName, false, s.Secure)
    }
}

// SetSnapshot writes the serialized principal into the companion cookie for
// fast paint before the profile round-trip completes.  The cookie is not
// HttpOnly on purpose; it carries no secret, only display data already
// shown on the page.
func (s *Store) SetSnapshot(c echo.Context, p *model.Principal) {
    if s.SnapshotName == "" || p == nil {
        return
    }
    raw, err := json.Marshal(p)
    if err != nil {
        return
    }
    c.SetCookie(&http.Cookie{
        Name:     s.SnapshotName,
        Value:    base64.RawURLEncoding.EncodeToString(raw),
        Path:     "/",
        Expires:  time.Now().Add(time.Duration(s.TTLDays) * 24 * time.Hour),
        MaxAge:   s.TTLDays * 24 * 60 * 60,
        Secure:   s.Secure,
        SameSite: http.SameSiteLaxMode,
    })
}

// Snapshot decodes the companion cookie, returning nil when it is absent or
// unreadable.  Snapshot data is advisory only and never grants access.
func (s *Store) Snapshot(c echo.Context) *model.Principal {
    if s.SnapshotName == "" {
        return nil
    }
    ck, err := c.Cookie(s.SnapshotName)
    if err != nil || ck == nil || ck.Value == "" {
        return nil
    }
    raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
    if err != nil {
        return nil
    }
    var p model.Principal
    if err := json.Unmarshal(raw, &p); err != nil {
        return nil
    }
    return &p
}

func expire(c echo.Context, name string, httpOnly, secure bool) {
    c.SetCookie(&http.Cookie{
        Name:     name,
        Value:    "",
        Path:     "/",
        Expires:  time.Unix(0, 0),
        MaxAge:   -1,
        HttpOnly: httpOnly,
        Secure:   secure,
        SameSite: http.SameSiteLaxMode,
    })
}
