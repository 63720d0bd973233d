// Package session implements the credential-driven session lifecycle: read
// the stored credential, decode it, check expiry, fetch the matching
// profile, and hold the result for the rest of the request.  The in-memory
// principal is always derived from the stored credential, never independent
// of it; every path that invalidates the credential also discards the
// principal.
package session

import (
    "github.com/workora/job-board-gateway/internal/auth"
    "github.com/workora/job-board-gateway/internal/model"
)

// State is the bootstrap machine's position.  A request starts at idle,
// moves to checking while the credential is inspected, and settles on
// authenticated or anonymous.  Nothing protected may be emitted before the
// machine settles.
type State int

const (
    StateIdle State = iota
    StateChecking
    StateAuthenticated
    StateAnonymous
)

// String returns the lowercase state name used in API responses.
func (s State) String() string {
    switch s {
    case StateIdle:
        return "idle"
    case StateChecking:
        return "checking"
    case StateAuthenticated:
        return "authenticated"
    default:
        return "anonymous"
    }
}

// Session is the resolved outcome of one bootstrap run.  Token and Claims
// are populated only in the authenticated state.
type Session struct {
    State     State
    Principal *model.Principal
    Token     string
    Claims    auth.Claims
}

// Authenticated reports whether the session settled with a live principal.
func (s Session) Authenticated() bool {
    return s.State == StateAuthenticated && s.Principal != nil
}

func anonymous() Session {
    return Session{State: StateAnonymous}
}
