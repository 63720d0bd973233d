// Package apiclient is the typed HTTP client for the core platform API.
// Every data operation the gateway performs goes through this package: it
// attaches the bearer credential, retries idempotent reads, unwraps the
// API's inconsistent response envelopes and converts failures into a small
// error taxonomy the handlers can branch on.  It never redirects and never
// clears session state on its own; a 401 surfaces as a typed error so the
// route guard decides what to do with the session.
package apiclient

import (
    "errors"
    "fmt"
    "strings"
)

// Kind classifies an upstream failure.  Handlers translate kinds into HTTP
// statuses and recovery actions; nothing below the handler layer inspects
// raw status codes.
type Kind int

const (
    KindTransport  Kind = iota // network failure, no HTTP response at all
    KindAuth                   // 401 from the core API
    KindValidation             // other 4xx carrying a message
    KindNotFound               // 404, also used to probe alternate resource shapes
    KindServer                 // 5xx
)

// Auth failure reasons, distinguished by inspecting the upstream error
// message text.  The core API reports all three through the same 401, so
// text matching is the only discriminator available.
const (
    ReasonInvalidCredentials = "invalid_credentials"
    ReasonUnverifiedEmail    = "unverified_email"
    ReasonBlockedAccount     = "blocked_account"
)

// ErrNoToken is returned by the login calls when the response carries none
// of the known token fields.  Login must fail before any state mutation, so
// this error fires before anything is persisted.
var ErrNoToken = errors.New("login response contains no credential")

// APIError is the typed error for any non-2xx upstream response or
// transport failure.
type APIError struct {
    Kind    Kind   // failure class
    Status  int    // HTTP status, zero for transport failures
    Reason  string // auth reason, only set when Kind == KindAuth
    Message string // upstream message text, best effort
    Err     error  // wrapped transport error, if any
}

func (e *APIError) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("core api: %v", e.Err)
    }
    if e.Message != "" {
        return fmt.Sprintf("core api: %d %s", e.Status, e.Message)
    }
    return fmt.Sprintf("core api: status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsAuth reports whether err is an upstream authentication failure.
func IsAuth(err error) bool {
    var ae *APIError
    return errors.As(err, &ae) && ae.Kind == KindAuth
}

// IsNotFound reports whether err is an upstream 404.  Callers use this to
// probe optional alternate resource shapes without treating the miss as a
// real failure.
func IsNotFound(err error) bool {
    var ae *APIError
    return errors.As(err, &ae) && ae.Kind == KindNotFound
}

// IsTransient reports whether err is worth retrying: a transport failure or
// a 5xx.  4xx responses are authoritative and never retried.
func IsTransient(err error) bool {
    var ae *APIError
    if !errors.As(err, &ae) {
        return false
    }
    return ae.Kind == KindTransport || ae.Kind == KindServer
}

// classify builds an APIError from an upstream status and message.
func classify(status int, message string) *APIError {
    e := &APIError{Status: status, Message: message}
    switch {
    case status == 401:
        e.Kind = KindAuth
        e.Reason = authReason(message)
    case status == 404:
        e.Kind = KindNotFound
    case status >= 500:
        e.Kind = KindServer
    default:
        e.Kind = KindValidation
    }
    return e
}

// authReason maps the upstream 401 message text onto one of the three auth
// failure reasons.  Anything unrecognized counts as invalid credentials,
// which is the safest default to show a login form.
func authReason(message string) string {
    m := strings.ToLower(message)
    switch {
    case strings.Contains(m, "verif"): // "unverified", "verify your email", "verification"
        return ReasonUnverifiedEmail
    case strings.Contains(m, "block"), strings.Contains(m, "suspend"), strings.Contains(m, "banned"):
        return ReasonBlockedAccount
    default:
        return ReasonInvalidCredentials
    }
}
