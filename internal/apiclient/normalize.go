package apiclient

import (
    "bytes"
    "encoding/json"
)

// The core API is inconsistent about response envelopes: the same resource
// can come back as a bare array or object, as {"data": ...}, or (job lists
// only) as {"posts": ...}.  unwrap is applied immediately after every fetch
// so the rest of the codebase only ever sees the payload itself.

// unwrap returns the payload carried by raw, peeling one envelope level if
// one is present.  A body that is not an object (bare array, string,
// number) is returned as-is.
func unwrap(raw []byte) json.RawMessage {
    trimmed := bytes.TrimSpace(raw)
    if len(trimmed) == 0 || trimmed[0] != '{' {
        return trimmed
    }
    var env struct {
        Data  json.RawMessage `json:"data"`
        Posts json.RawMessage `json:"posts"`
    }
    if err := json.Unmarshal(trimmed, &env); err != nil {
        return trimmed
    }
    if present(env.Data) {
        return env.Data
    }
    if present(env.Posts) {
        return env.Posts
    }
    return trimmed
}

// present reports whether an envelope field carried an actual value.
func present(m json.RawMessage) bool {
    return len(m) > 0 && string(bytes.TrimSpace(m)) != "null"
}

// decodeList decodes an upstream body into a slice of T after unwrapping.
// A null or absent payload normalizes to an empty slice so callers never
// branch on nil.
func decodeList[T any](raw []byte) ([]T, error) {
    payload := unwrap(raw)
    if !present(payload) {
        return []T{}, nil
    }
    var out []T
    if err := json.Unmarshal(payload, &out); err != nil {
        return nil, &APIError{Kind: KindTransport, Err: err}
    }
    if out == nil {
        out = []T{}
    }
    return out, nil
}

// decodeOne decodes an upstream body into a single T after unwrapping.
func decodeOne[T any](raw []byte) (*T, error) {
    payload := unwrap(raw)
    var out T
    if err := json.Unmarshal(payload, &out); err != nil {
        return nil, &APIError{Kind: KindTransport, Err: err}
    }
    return &out, nil
}
