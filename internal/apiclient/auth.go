package apiclient

import (
    "context"
    "encoding/json"

    "github.com/workora/job-board-gateway/internal/model"
)

// LoginResult is what a login endpoint yields: the issued credential plus,
// when the response embedded one, the profile object that came with it.
// The embedded profile saves the immediate follow-up fetch; when it is
// absent the caller runs the normal bootstrap branch instead.
type LoginResult struct {
    Token     string
    Principal *model.Principal
}

type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

// Login authenticates a job-seeker account via POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
    return c.login(ctx, "/auth/login", email, password)
}

// CompanyLogin authenticates an employer account via POST /company/login.
func (c *Client) CompanyLogin(ctx context.Context, email, password string) (*LoginResult, error) {
    return c.login(ctx, "/company/login", email, password)
}

// AdminLogin authenticates a back-office account via POST /admin/login.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
    return c.login(ctx, "/admin/login", email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) (*LoginResult, error) {
    raw, err := c.send(ctx, "POST", path, "", loginReq{Email: email, Password: password}, nil)
    if err != nil {
        return nil, err
    }
    tok, err := extractToken(raw)
    if err != nil {
        // No credential in the response means no login happened, full stop.
        // Nothing has been persisted at this point.
        return nil, err
    }
    return &LoginResult{Token: tok, Principal: extractPrincipal(raw)}, nil
}

// extractToken digs the issued credential out of a login response.  The
// backend has shipped three shapes over time: {"token": ...},
// {"data": {"token": ...}} and {"accessToken": ...}.  All three are
// accepted; none present is an error.
func extractToken(raw []byte) (string, error) {
    var env struct {
        Token       string `json:"token"`
        AccessToken string `json:"accessToken"`
        Data        struct {
            Token string `json:"token"`
        } `json:"data"`
    }
    if err := json.Unmarshal(raw, &env); err != nil {
        return "", ErrNoToken
    }
    switch {
    case validToken(env.Token):
        return env.Token, nil
    case validToken(env.Data.Token):
        return env.Data.Token, nil
    case validToken(env.AccessToken):
        return env.AccessToken, nil
    }
    return "", ErrNoToken
}

// extractPrincipal pulls an embedded profile object out of a login
// response when one is present under "admin", "user" or "company".
// Returns nil when the response carried only a token.
func extractPrincipal(raw []byte) *model.Principal {
    var env struct {
        Admin   json.RawMessage `json:"admin"`
        User    json.RawMessage `json:"user"`
        Company json.RawMessage `json:"company"`
    }
    if err := json.Unmarshal(raw, &env); err != nil {
        return nil
    }
    for _, m := range []json.RawMessage{env.Admin, env.User, env.Company} {
        if !present(m) {
            continue
        }
        var p model.Principal
        if err := json.Unmarshal(m, &p); err != nil {
            continue
        }
        p.Normalize()
        return &p
    }
    return nil
}

// UserProfile fetches the job-seeker "who am I" endpoint.
func (c *Client) UserProfile(ctx context.Context, tok string) (*model.Principal, error) {
    raw, err := c.get(ctx, "/users/me", tok)
    if err != nil {
        return nil, err
    }
    return decodePrincipal(raw)
}

// CompanyProfile fetches the employer profile.  Older deployments of the
// core API served it under /companies/profile; a 404 on the current path
// probes the legacy one before giving up.
func (c *Client) CompanyProfile(ctx context.Context, tok string) (*model.Principal, error) {
    raw, err := c.get(ctx, "/company/profile", tok)
    if IsNotFound(err) {
        raw, err = c.get(ctx, "/companies/profile", tok)
    }
    if err != nil {
        return nil, err
    }
    return decodePrincipal(raw)
}

// AdminProfile fetches the back-office profile.
func (c *Client) AdminProfile(ctx context.Context, tok string) (*model.Principal, error) {
    raw, err := c.get(ctx, "/admin/me", tok)
    if err != nil {
        return nil, err
    }
    return decodePrincipal(raw)
}

// ProfileForRole dispatches to the endpoint matching the credential's role
// claim.  The role must already have been validated by the decoder.
func (c *Client) ProfileForRole(ctx context.Context, role model.Role, tok string) (*model.Principal, error) {
    switch role {
    case model.RoleCompany:
        return c.CompanyProfile(ctx, tok)
    case model.RoleAdmin:
        return c.AdminProfile(ctx, tok)
    default:
        return c.UserProfile(ctx, tok)
    }
}

func decodePrincipal(raw []byte) (*model.Principal, error) {
    p, err := decodeOne[model.Principal](raw)
    if err != nil {
        return nil, err
    }
    p.Normalize()
    return p, nil
}
