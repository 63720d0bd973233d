package apiclient

import (
    "bytes"
    "context"
    "encoding/json"
    "io"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/workora/job-board-gateway/internal/config"
)

// Client talks to the core platform API.  It is safe for concurrent use;
// all state is immutable after construction.
type Client struct {
    baseURL string
    httpc   *http.Client
    retry   config.RetryConfig
}

// New builds a Client for the given base URL.  The timeout applies per
// attempt, not across retries.
func New(baseURL string, timeout time.Duration, retry config.RetryConfig) *Client {
    return &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        httpc:   &http.Client{Timeout: timeout},
        retry:   retry,
    }
}

// validToken reports whether the credential is worth sending.  The literal
// strings "undefined" and "null" come from historical client serialization
// bugs; a garbage header is worse than no header, so they are dropped here
// as well as in the cookie store.
func validToken(tok string) bool {
    return tok != "" && tok != "undefined" && tok != "null"
}

// get performs a GET with bounded retry.  Only transient failures
// (transport errors, 5xx) are retried; an authoritative 4xx returns
// immediately.  GETs against the core API are idempotent by contract, so
// retrying is safe.
func (c *Client) get(ctx context.Context, path, tok string) ([]byte, error) {
    var lastErr error
    delay := c.retry.BaseDelay
    for attempt := 0; attempt < c.retry.Attempts; attempt++ {
        if attempt > 0 {
            select {
            case <-ctx.Done():
                return nil, &APIError{Kind: KindTransport, Err: ctx.Err()}
            case <-time.After(delay):
            }
            delay *= 2
            if delay > c.retry.MaxDelay {
                delay = c.retry.MaxDelay
            }
        }
        body, err := c.roundTrip(ctx, http.MethodGet, path, tok, nil, nil)
        if err == nil {
            return body, nil
        }
        lastErr = err
        if !IsTransient(err) {
            return nil, err
        }
    }
    return nil, lastErr
}

// send performs a mutating request exactly once.  Retrying a POST or PATCH
// could double-apply it; callers that need safe resubmission attach an
// idempotency key instead.
func (c *Client) send(ctx context.Context, method, path, tok string, payload any, extra http.Header) ([]byte, error) {
    var body io.Reader
    if payload != nil {
        raw, err := json.Marshal(payload)
        if err != nil {
            return nil, &APIError{Kind: KindTransport, Err: err}
        }
        body = bytes.NewReader(raw)
    }
    return c.roundTrip(ctx, method, path, tok, body, extra)
}

// roundTrip issues one HTTP request and maps the outcome onto the error
// taxonomy.  The bearer header is attached only when a usable credential is
// present; it is never sent empty.
func (c *Client) roundTrip(ctx context.Context, method, path, tok string, body io.Reader, extra http.Header) ([]byte, error) {
    req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
    if err != nil {
        return nil, &APIError{Kind: KindTransport, Err: err}
    }
    req.Header.Set("Accept", "application/json")
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    req.Header.Set("X-Request-ID", uuid.NewString())
    if validToken(tok) {
        req.Header.Set("Authorization", "Bearer "+tok)
    }
    for k, vals := range extra {
        for _, v := range vals {
            req.Header.Add(k, v)
        }
    }

    res, err := c.httpc.Do(req)
    if err != nil {
        return nil, &APIError{Kind: KindTransport, Err: err}
    }
    defer res.Body.Close()

    raw, err := io.ReadAll(res.Body)
    if err != nil {
        return nil, &APIError{Kind: KindTransport, Err: err}
    }
    if res.StatusCode >= 200 && res.StatusCode < 300 {
        return raw, nil
    }
    return nil, classify(res.StatusCode, errorMessage(raw))
}

// errorMessage pulls the human-readable message out of an error body.  The
// core API answers with either {"error": "..."} or {"message": "..."}.
func errorMessage(raw []byte) string {
    var env struct {
        Error   string `json:"error"`
        Message string `json:"message"`
    }
    if err := json.Unmarshal(raw, &env); err != nil {
        return ""
    }
    if env.Error != "" {
        return env.Error
    }
    return env.Message
}
