// Package handler exposes the gateway's HTTP endpoints.  Handlers call the
// core API through the typed client, own their local error state, and
// translate the client's error taxonomy into responses; no upstream error
// escapes a handler unrecovered.
package handler

import (
    "errors"
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/apiclient"
)

// Recovery actions attached to auth failures so the UI can render the
// right affordance instead of a bare error string.
const (
    recoveryRetry              = "retry"
    recoveryResendVerification = "resend_verification"
    recoveryContactSupport     = "contact_support"
)

// recoveryFor maps an auth failure reason to its recovery action.
func recoveryFor(reason string) string {
    switch reason {
    case apiclient.ReasonUnverifiedEmail:
        return recoveryResendVerification
    case apiclient.ReasonBlockedAccount:
        return recoveryContactSupport
    default:
        return recoveryRetry
    }
}

// respondError converts a core API error into the gateway's response.
// Authentication failures carry their reason and recovery action;
// validation failures pass the upstream message through; transport and
// server failures are logged and collapsed into a generic banner so the
// user is never left staring at upstream internals or an infinite spinner.
func respondError(c echo.Context, err error) error {
    if errors.Is(err, apiclient.ErrNoToken) {
        log.Printf("handler: login response missing credential")
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "login failed, please try again"})
    }

    var ae *apiclient.APIError
    if !errors.As(err, &ae) {
        log.Printf("handler: unexpected error: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong"})
    }

    switch ae.Kind {
    case apiclient.KindAuth:
        msg := ae.Message
        if msg == "" {
            msg = "authentication failed"
        }
        return c.JSON(http.StatusUnauthorized, echo.Map{
            "error":    msg,
            "reason":   ae.Reason,
            "recovery": recoveryFor(ae.Reason),
        })
    case apiclient.KindNotFound:
        return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
    case apiclient.KindValidation:
        status := ae.Status
        if status < 400 || status >= 500 {
            status = http.StatusBadRequest
        }
        msg := ae.Message
        if msg == "" {
            msg = "invalid request"
        }
        return c.JSON(status, echo.Map{"error": msg})
    default: // transport or 5xx
        log.Printf("handler: upstream failure: %v", err)
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "service temporarily unavailable"})
    }
}
