package apiclient

import (
    "context"
    "net/http"
    "sync"
    "sync/atomic"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/workora/job-board-gateway/internal/model"
)

func TestExtractToken(t *testing.T) {
    cases := []struct {
        name string
        body string
        want string
    }{
        {"top level", `{"token":"t1"}`, "t1"},
        {"data envelope", `{"data":{"token":"t2"}}`, "t2"},
        {"accessToken", `{"accessToken":"t3"}`, "t3"},
        {"top level wins over accessToken", `{"token":"t1","accessToken":"t3"}`, "t1"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got, err := extractToken([]byte(tc.body))
            require.NoError(t, err)
            assert.Equal(t, tc.want, got)
        })
    }
}

func TestExtractToken_Missing(t *testing.T) {
    for _, body := range []string{
        `{}`,
        `{"user":{"id":"u1"}}`,
        `{"token":""}`,
        `{"token":"undefined"}`,
        `{"data":{"token":"null"}}`,
        `not json`,
    } {
        _, err := extractToken([]byte(body))
        assert.ErrorIs(t, err, ErrNoToken, "body %s", body)
    }
}

func TestExtractPrincipal(t *testing.T) {
    p := extractPrincipal([]byte(`{"token":"t","user":{"id":"u1","name":"Dana","role":"user"}}`))
    require.NotNil(t, p)
    assert.Equal(t, "u1", p.ID)
    assert.Equal(t, model.RoleUser, p.Role)

    // Company profile with the legacy logo alias gets normalized.
    p = extractPrincipal([]byte(`{"token":"t","company":{"id":"c1","role":"company","logo":"cdn/c1.png"}}`))
    require.NotNil(t, p)
    assert.Equal(t, "cdn/c1.png", p.CompanyLogo)
    assert.Empty(t, p.Logo)

    assert.Nil(t, extractPrincipal([]byte(`{"token":"t"}`)))
    assert.Nil(t, extractPrincipal([]byte(`{"token":"t","user":null}`)))
}

func TestLogin_NoTokenFailsBeforeAnyState(t *testing.T) {
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"message":"ok but no credential"}`))
    })

    res, err := c.Login(context.Background(), "a@b.c", "pw")
    assert.ErrorIs(t, err, ErrNoToken)
    assert.Nil(t, res)
}

func TestLogin_AuthFailureCarriesReason(t *testing.T) {
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusUnauthorized)
        w.Write([]byte(`{"error":"Please verify your email before logging in"}`))
    })

    _, err := c.Login(context.Background(), "a@b.c", "pw")
    var ae *APIError
    require.ErrorAs(t, err, &ae)
    assert.Equal(t, KindAuth, ae.Kind)
    assert.Equal(t, ReasonUnverifiedEmail, ae.Reason)
}

func TestLogin_NoBearerOnLoginRequest(t *testing.T) {
    var auth atomic.Value
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        auth.Store(r.Header.Get("Authorization"))
        w.Write([]byte(`{"token":"issued"}`))
    })

    res, err := c.AdminLogin(context.Background(), "root@example.com", "pw")
    require.NoError(t, err)
    assert.Equal(t, "issued", res.Token)
    assert.Empty(t, auth.Load())
}

func TestCompanyProfile_LegacyPathProbe(t *testing.T) {
    var mu sync.Mutex
    var paths []string
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        mu.Lock()
        paths = append(paths, r.URL.Path)
        mu.Unlock()
        if r.URL.Path == "/company/profile" {
            w.WriteHeader(http.StatusNotFound)
            return
        }
        w.Write([]byte(`{"data":{"id":"c9","name":"Acme","role":"company"}}`))
    })

    p, err := c.CompanyProfile(context.Background(), "tok")
    require.NoError(t, err)
    assert.Equal(t, "c9", p.ID)
    mu.Lock()
    assert.Equal(t, []string{"/company/profile", "/companies/profile"}, paths)
    mu.Unlock()
}

func TestCompanyProfile_NoProbeOnOtherErrors(t *testing.T) {
    var calls atomic.Int32
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        calls.Add(1)
        w.WriteHeader(http.StatusUnauthorized)
        w.Write([]byte(`{"error":"token expired"}`))
    })

    _, err := c.CompanyProfile(context.Background(), "tok")
    assert.True(t, IsAuth(err))
    assert.Equal(t, int32(1), calls.Load())
}

func TestProfileForRole(t *testing.T) {
    var path atomic.Value
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        path.Store(r.URL.Path)
        w.Write([]byte(`{"id":"x","role":"user"}`))
    })

    cases := map[model.Role]string{
        model.RoleUser:    "/users/me",
        model.RoleCompany: "/company/profile",
        model.RoleAdmin:   "/admin/me",
    }
    for role, want := range cases {
        _, err := c.ProfileForRole(context.Background(), role, "tok")
        require.NoError(t, err)
        assert.Equal(t, want, path.Load(), "role %s", role)
    }
}
