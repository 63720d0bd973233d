package auth // package auth decodes the session credential issued by the core API

import (
    "errors"  // sentinel decode errors
    "fmt"     // formatting numeric subject claims
    "time"    // expiry comparisons

    "github.com/golang-jwt/jwt/v5" // JWT library used to split and decode the credential

    "github.com/workora/job-board-gateway/internal/model"
)

// The credential is a signed JWT, but the signing key belongs to the core
// API and is never shared with the gateway.  The gateway therefore performs
// an unverified payload decode, exactly as the browser client did: a token
// that does not parse, or whose exp claim is in the past, is discarded and
// the session falls back to anonymous.  Signature verification happens
// upstream on every proxied request, so a forged token buys nothing here
// beyond a doomed profile fetch.

// ErrMalformed is returned when the credential cannot be decoded at all.
var ErrMalformed = errors.New("credential is not a decodable token")

// ErrUnknownRole is returned when the role claim is missing or not one of
// the known role values.  Such a credential cannot select a profile
// endpoint and is treated the same as a malformed one.
var ErrUnknownRole = errors.New("credential carries an unknown role claim")

// Claims is the decoded payload of a session credential.
type Claims struct {
    Subject   string     // sub claim: the account identifier
    Role      model.Role // role claim: user | company | admin
    ExpiresAt time.Time  // exp claim as a time.Time, zero when absent
    IssuedAt  time.Time  // iat claim as a time.Time, zero when absent
}

// Expired reports whether the credential must be considered dead at the
// given instant.  A missing exp claim counts as expired: a credential
// without a bounded lifetime is never trusted.
func (c Claims) Expired(now time.Time) bool {
    return c.ExpiresAt.IsZero() || !now.Before(c.ExpiresAt)
}

// Decode extracts the claims from a raw credential string without verifying
// the signature.  It returns ErrMalformed when the token does not parse and
// ErrUnknownRole when the role discriminator is absent or unrecognized.
// Expiry is not checked here; callers decide with Claims.Expired so that
// decode failures and expiry can be handled distinctly.
func Decode(raw string) (Claims, error) {
    tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
    if err != nil {
        return Claims{}, ErrMalformed
    }
    mc, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return Claims{}, ErrMalformed
    }

    var c Claims

    // The subject may arrive as a string or a bare number depending on
    // which backend service issued the token.
    switch sub := mc["sub"].(type) {
    case string:
        c.Subject = sub
    case float64:
        c.Subject = fmt.Sprintf("%.0f", sub)
    }

    role, _ := mc["role"].(string)
    c.Role = model.Role(role)
    if !c.Role.Valid() {
        return Claims{}, ErrUnknownRole
    }

    if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
        c.ExpiresAt = exp.Time
    }
    if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
        c.IssuedAt = iat.Time
    }
    return c, nil
}
