package session

import (
    "context"
    "sync/atomic"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/apiclient"
    "github.com/workora/job-board-gateway/internal/auth"
    "github.com/workora/job-board-gateway/internal/model"
    "github.com/workora/job-board-gateway/internal/token"
)

// ProfileAPI is the slice of the core API client the session layer needs.
// *apiclient.Client satisfies it; tests substitute a stub.
type ProfileAPI interface {
    ProfileForRole(ctx context.Context, role model.Role, tok string) (*model.Principal, error)
    Login(ctx context.Context, email, password string) (*apiclient.LoginResult, error)
    CompanyLogin(ctx context.Context, email, password string) (*apiclient.LoginResult, error)
    AdminLogin(ctx context.Context, email, password string) (*apiclient.LoginResult, error)
}

// ProfileCache caches resolved principals keyed by credential so repeated
// bootstraps within a cache window skip the upstream round-trip.  A nil
// cache is valid and disables the fast path.
type ProfileCache interface {
    Get(ctx context.Context, credential string) *model.Principal
    Put(ctx context.Context, credential string, p *model.Principal)
    Invalidate(ctx context.Context, credential string)
}

// Manager owns the session state transitions.  It is the single writer:
// only Bootstrap, Login, Logout and Refresh touch the credential store or
// the cached principal.  Handlers read the resolved Session from the
// request context and never mutate it.
type Manager struct {
    api   ProfileAPI
    store *token.Store
    cache ProfileCache  // may be nil
    gen   atomic.Uint64 // refresh generation, guards against stale overwrites
    now   func() time.Time
}

// NewManager builds a Manager around a credential store.  Two managers run
// in production, one per credential cookie (site and admin).
func NewManager(api ProfileAPI, store *token.Store, cache ProfileCache) *Manager {
    return &Manager{api: api, store: store, cache: cache, now: time.Now}
}

// Store exposes the underlying credential store for the middleware that
// needs a raw presence check without a full bootstrap.
func (m *Manager) Store() *token.Store { return m.store }

// Bootstrap runs the state machine for the incoming request:
//
//	checking -> anonymous      when no credential is stored
//	checking -> anonymous      when the credential does not decode (credential cleared)
//	checking -> anonymous      when exp is in the past (credential cleared)
//	checking -> anonymous      when the profile fetch fails (credential cleared)
//	checking -> authenticated  otherwise, with the principal populated
//
// It is idempotent and safe to run any number of times for the same
// request or across requests.
func (m *Manager) Bootstrap(c echo.Context) Session {
    tok := m.store.Get(c)
    if tok == "" {
        return anonymous()
    }
    claims, err := auth.Decode(tok)
    if err != nil {
        // Undecodable credential: clear it so the next load starts clean.
        m.store.Clear(c)
        return anonymous()
    }
    if claims.Expired(m.now()) {
        m.store.Clear(c)
        return anonymous()
    }

    ctx := c.Request().Context()
    if m.cache != nil {
        if p := m.cache.Get(ctx, tok); p != nil {
            return Session{State: StateAuthenticated, Principal: p, Token: tok, Claims: claims}
        }
    }

    p, err := m.api.ProfileForRole(ctx, claims.Role, tok)
    if err != nil {
        // A 401 here is routine (revoked or upstream-expired credential on a
        // return visit) and a transport failure leaves us unable to tell an
        // authenticated story either way.  Both clear silently.
        m.store.Clear(c)
        if m.cache != nil {
            m.cache.Invalidate(ctx, tok)
        }
        return anonymous()
    }
    m.commit(c, tok, p)
    return Session{State: StateAuthenticated, Principal: p, Token: tok, Claims: claims}
}

// Login authenticates against the endpoint matching the requested role,
// persists the issued credential and enters the authenticated branch.  On
// any error nothing is persisted: a login either completes fully or leaves
// no trace.
func (m *Manager) Login(c echo.Context, role model.Role, email, password string) (Session, error) {
    ctx := c.Request().Context()

    var res *apiclient.LoginResult
    var err error
    switch role {
    case model.RoleCompany:
        res, err = m.api.CompanyLogin(ctx, email, password)
    case model.RoleAdmin:
        res, err = m.api.AdminLogin(ctx, email, password)
    default:
        res, err = m.api.Login(ctx, email, password)
    }
    if err != nil {
        return anonymous(), err
    }

    claims, derr := auth.Decode(res.Token)
    if derr != nil || claims.Expired(m.now()) {
        // The upstream issued something unusable; refuse it outright.
        return anonymous(), auth.ErrMalformed
    }

    p := res.Principal
    if p == nil {
        p, err = m.api.ProfileForRole(ctx, claims.Role, res.Token)
        if err != nil {
            return anonymous(), err
        }
    }

    m.store.Set(c, res.Token)
    m.commit(c, res.Token, p)
    return Session{State: StateAuthenticated, Principal: p, Token: res.Token, Claims: claims}, nil
}

// Logout clears the stored credential and discards cached state.  No
// upstream call is made: the credential is a stateless bearer token and
// simply stops being presented.
func (m *Manager) Logout(c echo.Context) {
    if tok := m.store.Get(c); tok != "" && m.cache != nil {
        m.cache.Invalidate(c.Request().Context(), tok)
    }
    m.store.Clear(c)
}

// Refresh re-runs the authenticated branch bypassing the cache, for use
// after profile edits.  Concurrent refreshes are tagged with a generation;
// a slower, older fetch that resolves after a newer one has committed must
// not overwrite the newer principal, so a superseded result is discarded
// without touching the cache or the snapshot cookie.
func (m *Manager) Refresh(c echo.Context) Session {
    tok := m.store.Get(c)
    if tok == "" {
        return anonymous()
    }
    claims, err := auth.Decode(tok)
    if err != nil || claims.Expired(m.now()) {
        m.store.Clear(c)
        return anonymous()
    }

    gen := m.gen.Add(1)
    ctx := c.Request().Context()
    p, err := m.api.ProfileForRole(ctx, claims.Role, tok)
    if err != nil {
        m.store.Clear(c)
        if m.cache != nil {
            m.cache.Invalidate(ctx, tok)
        }
        return anonymous()
    }

    if m.gen.Load() != gen {
        // Superseded while in flight.  Serve whatever the newer refresh
        // committed; fall back to our own result only when nothing is
        // cached.
        if m.cache != nil {
            if cached := m.cache.Get(ctx, tok); cached != nil {
                return Session{State: StateAuthenticated, Principal: cached, Token: tok, Claims: claims}
            }
        }
        return Session{State: StateAuthenticated, Principal: p, Token: tok, Claims: claims}
    }

    m.commit(c, tok, p)
    return Session{State: StateAuthenticated, Principal: p, Token: tok, Claims: claims}
}

// commit is the one place a resolved principal becomes visible: snapshot
// cookie for fast paint, cache entry for the next bootstrap.
func (m *Manager) commit(c echo.Context, tok string, p *model.Principal) {
    m.store.SetSnapshot(c, p)
    if m.cache != nil {
        m.cache.Put(c.Request().Context(), tok, p)
    }
}
