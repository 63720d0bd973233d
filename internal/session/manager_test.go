package session

import (
    "context"
    "net/http"
    "net/http/httptest"
    "sync"
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/workora/job-board-gateway/internal/apiclient"
    "github.com/workora/job-board-gateway/internal/model"
    "github.com/workora/job-board-gateway/internal/token"
)

// stubAPI implements ProfileAPI with programmable behavior per call.
type stubAPI struct {
    mu           sync.Mutex
    profileFn    func(role model.Role, tok string) (*model.Principal, error)
    loginFn      func(email, password string) (*apiclient.LoginResult, error)
    profileCalls int
}

func (s *stubAPI) ProfileForRole(_ context.Context, role model.Role, tok string) (*model.Principal, error) {
    s.mu.Lock()
    s.profileCalls++
    fn := s.profileFn
    s.mu.Unlock()
    if fn == nil {
        return nil, &apiclient.APIError{Kind: apiclient.KindAuth, Status: 401}
    }
    return fn(role, tok)
}

func (s *stubAPI) calls() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.profileCalls
}

func (s *stubAPI) Login(_ context.Context, email, password string) (*apiclient.LoginResult, error) {
    return s.loginFn(email, password)
}

func (s *stubAPI) CompanyLogin(_ context.Context, email, password string) (*apiclient.LoginResult, error) {
    return s.loginFn(email, password)
}

func (s *stubAPI) AdminLogin(_ context.Context, email, password string) (*apiclient.LoginResult, error) {
    return s.loginFn(email, password)
}

// mapCache is an in-memory ProfileCache.
type mapCache struct {
    mu sync.Mutex
    m  map[string]*model.Principal
}

func newMapCache() *mapCache { return &mapCache{m: map[string]*model.Principal{}} }

func (c *mapCache) Get(_ context.Context, tok string) *model.Principal {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.m[tok]
}

func (c *mapCache) Put(_ context.Context, tok string, p *model.Principal) {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.m[tok] = p
}

func (c *mapCache) Invalidate(_ context.Context, tok string) {
    c.mu.Lock()
    defer c.mu.Unlock()
    delete(c.m, tok)
}

func testStore() *token.Store {
    return &token.Store{Name: "auth_token", SnapshotName: "profile_snapshot", TTLDays: 7}
}

func signedToken(t *testing.T, role model.Role, exp time.Time) string {
    t.Helper()
    raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "sub":  "u-1",
        "role": string(role),
        "exp":  exp.Unix(),
        "iat":  time.Now().Unix(),
    }).SignedString([]byte("upstream-secret"))
    require.NoError(t, err)
    return raw
}

func newCtx(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    for _, ck := range cookies {
        req.AddCookie(ck)
    }
    rec := httptest.NewRecorder()
    return echo.New().NewContext(req, rec), rec
}

func clearedCookie(rec *httptest.ResponseRecorder, name string) bool {
    for _, ck := range rec.Result().Cookies() {
        if ck.Name == name && ck.MaxAge < 0 {
            return true
        }
    }
    return false
}

func TestBootstrap_NoCredential(t *testing.T) {
    m := NewManager(&stubAPI{}, testStore(), nil)
    c, rec := newCtx()

    s := m.Bootstrap(c)
    assert.Equal(t, StateAnonymous, s.State)
    assert.Nil(t, s.Principal)
    assert.False(t, s.Authenticated())
    // Nothing to clear, nothing written.
    assert.Empty(t, rec.Result().Cookies())
}

func TestBootstrap_UndecodableCredentialCleared(t *testing.T) {
    api := &stubAPI{}
    m := NewManager(api, testStore(), nil)
    c, rec := newCtx(&http.Cookie{Name: "auth_token", Value: "garbage"})

    s := m.Bootstrap(c)
    assert.Equal(t, StateAnonymous, s.State)
    assert.True(t, clearedCookie(rec, "auth_token"))
    assert.Zero(t, api.calls())
}

func TestBootstrap_ExpiredCredentialCleared(t *testing.T) {
    api := &stubAPI{}
    m := NewManager(api, testStore(), nil)
    tok := signedToken(t, model.RoleUser, time.Now().Add(-time.Hour))
    c, rec := newCtx(&http.Cookie{Name: "auth_token", Value: tok})

    s := m.Bootstrap(c)
    assert.Equal(t, StateAnonymous, s.State)
    assert.True(t, clearedCookie(rec, "auth_token"))
    assert.True(t, clearedCookie(rec, "profile_snapshot"))
    assert.Zero(t, api.calls())
}

func TestBootstrap_ProfileFetchSucceeds(t *testing.T) {
    want := &model.Principal{ID: "u-1", Name: "Dana", Role: model.RoleUser}
    api := &stubAPI{profileFn: func(role model.Role, tok string) (*model.Principal, error) {
        assert.Equal(t, model.RoleUser, role)
        return want, nil
    }}
    m := NewManager(api, testStore(), nil)
    tok := signedToken(t, model.RoleUser, time.Now().Add(time.Hour))
    c, rec := newCtx(&http.Cookie{Name: "auth_token", Value: tok})

    s := m.Bootstrap(c)
    require.Equal(t, StateAuthenticated, s.State)
    assert.True(t, s.Authenticated())
    assert.Same(t, want, s.Principal)
    assert.Equal(t, tok, s.Token)
    assert.Equal(t, "u-1", s.Claims.Subject)

    // The snapshot cookie is written on commit.
    assert.False(t, clearedCookie(rec, "auth_token"))
    var snapshotSet bool
    for _, ck := range rec.Result().Cookies() {
        if ck.Name == "profile_snapshot" && ck.MaxAge > 0 {
            snapshotSet = true
        }
    }
    assert.True(t, snapshotSet)
}

func TestBootstrap_ProfileFetch401Clears(t *testing.T) {
    cache := newMapCache()
    api := &stubAPI{} // nil profileFn answers 401
    m := NewManager(api, testStore(), cache)
    tok := signedToken(t, model.RoleUser, time.Now().Add(time.Hour))
    cache.Put(context.Background(), "other-token", &model.Principal{ID: "x"})
    c, rec := newCtx(&http.Cookie{Name: "auth_token", Value: tok})

    s := m.Bootstrap(c)
    assert.Equal(t, StateAnonymous, s.State)
    assert.True(t, clearedCookie(rec, "auth_token"))
    assert.Nil(t, cache.Get(context.Background(), tok))
    // Unrelated cache entries survive.
    assert.NotNil(t, cache.Get(context.Background(), "other-token"))
}

func TestBootstrap_CacheFastPath(t *testing.T) {
    cached := &model.Principal{ID: "u-1", Role: model.RoleUser}
    cache := newMapCache()
    api := &stubAPI{}
    m := NewManager(api, testStore(), cache)
    tok := signedToken(t, model.RoleUser, time.Now().Add(time.Hour))
    cache.Put(context.Background(), tok, cached)
    c, _ := newCtx(&http.Cookie{Name: "auth_token", Value: tok})

    s := m.Bootstrap(c)
    require.Equal(t, StateAuthenticated, s.State)
    assert.Same(t, cached, s.Principal)
    assert.Zero(t, api.calls(), "cache hit must not call upstream")
}

func TestLogin_Success(t *testing.T) {
    tok := signedToken(t, model.RoleCompany, time.Now().Add(time.Hour))
    principal := &model.Principal{ID: "c-1", Role: model.RoleCompany}
    api := &stubAPI{loginFn: func(email, password string) (*apiclient.LoginResult, error) {
        assert.Equal(t, "boss@acme.io", email)
        return &apiclient.LoginResult{Token: tok, Principal: principal}, nil
    }}
    m := NewManager(api, testStore(), nil)
    c, rec := newCtx()

    s, err := m.Login(c, model.RoleCompany, "boss@acme.io", "pw")
    require.NoError(t, err)
    assert.Equal(t, StateAuthenticated, s.State)
    assert.Same(t, principal, s.Principal)
    assert.Zero(t, api.calls(), "embedded principal skips the profile fetch")

    var credentialSet bool
    for _, ck := range rec.Result().Cookies() {
        if ck.Name == "auth_token" && ck.Value == tok {
            credentialSet = true
        }
    }
    assert.True(t, credentialSet)
}

func TestLogin_FetchesProfileWhenNotEmbedded(t *testing.T) {
    tok := signedToken(t, model.RoleUser, time.Now().Add(time.Hour))
    want := &model.Principal{ID: "u-1", Role: model.RoleUser}
    api := &stubAPI{
        loginFn: func(email, password string) (*apiclient.LoginResult, error) {
            return &apiclient.LoginResult{Token: tok}, nil
        },
        profileFn: func(role model.Role, got string) (*model.Principal, error) {
            assert.Equal(t, tok, got)
            return want, nil
        },
    }
    m := NewManager(api, testStore(), nil)
    c, _ := newCtx()

    s, err := m.Login(c, model.RoleUser, "a@b.c", "pw")
    require.NoError(t, err)
    assert.Same(t, want, s.Principal)
    assert.Equal(t, 1, api.calls())
}

func TestLogin_FailurePersistsNothing(t *testing.T) {
    upstream := &apiclient.APIError{Kind: apiclient.KindAuth, Status: 401, Reason: apiclient.ReasonBlockedAccount}
    api := &stubAPI{loginFn: func(email, password string) (*apiclient.LoginResult, error) {
        return nil, upstream
    }}
    m := NewManager(api, testStore(), nil)
    c, rec := newCtx()

    s, err := m.Login(c, model.RoleUser, "a@b.c", "pw")
    assert.ErrorIs(t, err, upstream)
    assert.Equal(t, StateAnonymous, s.State)
    assert.Empty(t, rec.Result().Cookies(), "failed login leaves no trace")
}

func TestLogin_RejectsUnusableIssuedToken(t *testing.T) {
    api := &stubAPI{loginFn: func(email, password string) (*apiclient.LoginResult, error) {
        return &apiclient.LoginResult{Token: "not-a-jwt"}, nil
    }}
    m := NewManager(api, testStore(), nil)
    c, rec := newCtx()

    _, err := m.Login(c, model.RoleUser, "a@b.c", "pw")
    assert.Error(t, err)
    assert.Empty(t, rec.Result().Cookies())
}

func TestLogout(t *testing.T) {
    cache := newMapCache()
    m := NewManager(&stubAPI{}, testStore(), cache)
    tok := signedToken(t, model.RoleUser, time.Now().Add(time.Hour))
    cache.Put(context.Background(), tok, &model.Principal{ID: "u-1"})
    c, rec := newCtx(&http.Cookie{Name: "auth_token", Value: tok})

    m.Logout(c)
    assert.True(t, clearedCookie(rec, "auth_token"))
    assert.True(t, clearedCookie(rec, "profile_snapshot"))
    assert.Nil(t, cache.Get(context.Background(), tok))
}

func TestRefresh_BypassesCache(t *testing.T) {
    stale := &model.Principal{ID: "u-1", Name: "Old Name", Role: model.RoleUser}
    fresh := &model.Principal{ID: "u-1", Name: "New Name", Role: model.RoleUser}
    cache := newMapCache()
    api := &stubAPI{profileFn: func(role model.Role, tok string) (*model.Principal, error) {
        return fresh, nil
    }}
    m := NewManager(api, testStore(), cache)
    tok := signedToken(t, model.RoleUser, time.Now().Add(time.Hour))
    cache.Put(context.Background(), tok, stale)
    c, _ := newCtx(&http.Cookie{Name: "auth_token", Value: tok})

    s := m.Refresh(c)
    require.Equal(t, StateAuthenticated, s.State)
    assert.Same(t, fresh, s.Principal)
    assert.Equal(t, 1, api.calls())
    assert.Same(t, fresh, cache.Get(context.Background(), tok))
}

func TestRefresh_StaleResultDoesNotOverwrite(t *testing.T) {
    older := &model.Principal{ID: "u-1", Name: "Older", Role: model.RoleUser}
    newer := &model.Principal{ID: "u-1", Name: "Newer", Role: model.RoleUser}

    release := make(chan struct{})
    started := make(chan struct{})
    var first sync.Once
    api := &stubAPI{}
    api.profileFn = func(role model.Role, tok string) (*model.Principal, error) {
        var blocked bool
        first.Do(func() { blocked = true })
        if blocked {
            close(started)
            <-release
            return older, nil
        }
        return newer, nil
    }

    cache := newMapCache()
    m := NewManager(api, testStore(), cache)
    tok := signedToken(t, model.RoleUser, time.Now().Add(time.Hour))

    // First refresh starts and stalls mid-fetch.
    var slow Session
    done := make(chan struct{})
    go func() {
        defer close(done)
        c, _ := newCtx(&http.Cookie{Name: "auth_token", Value: tok})
        slow = m.Refresh(c)
    }()
    <-started

    // Second refresh completes while the first is still in flight.
    c, _ := newCtx(&http.Cookie{Name: "auth_token", Value: tok})
    fast := m.Refresh(c)
    require.Equal(t, StateAuthenticated, fast.State)
    assert.Same(t, newer, fast.Principal)

    close(release)
    <-done

    // The stale result is discarded: the cache keeps the newer principal
    // and the superseded refresh serves it too.
    assert.Same(t, newer, cache.Get(context.Background(), tok))
    require.Equal(t, StateAuthenticated, slow.State)
    assert.Same(t, newer, slow.Principal)
}

func TestRefresh_NoCredential(t *testing.T) {
    m := NewManager(&stubAPI{}, testStore(), nil)
    c, _ := newCtx()
    assert.Equal(t, StateAnonymous, m.Refresh(c).State)
}
