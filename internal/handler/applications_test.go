package handler

import (
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "strings"
    "sync/atomic"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/workora/job-board-gateway/internal/model"
)

func patchStatusCtx(id, body string) (echo.Context, *httptest.ResponseRecorder) {
    req := httptest.NewRequest(http.MethodPatch, "/v1/company/applications/"+id, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := echo.New().NewContext(req, rec)
    c.SetParamNames("id")
    c.SetParamValues(id)
    return c, rec
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
    var patched atomic.Bool
    h := NewApplicationHandler(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
        switch r.Method {
        case http.MethodGet:
            fmt.Fprint(w, `{"id":"a1","job_id":"j1","status":"pending"}`)
        case http.MethodPatch:
            patched.Store(true)
            var body struct {
                Status string `json:"status"`
            }
            assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
            assert.Equal(t, "shortlisted", body.Status)
            fmt.Fprint(w, `{"id":"a1","job_id":"j1","status":"shortlisted"}`)
        }
    }))

    c, rec := patchStatusCtx("a1", `{"status":"Shortlisted"}`)
    require.NoError(t, h.UpdateStatus(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.True(t, patched.Load())

    var app model.Application
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &app))
    assert.Equal(t, model.ApplicationStatusShortlisted, app.Status)
}

func TestUpdateStatus_InvalidTransitionConflicts(t *testing.T) {
    h := NewApplicationHandler(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodGet {
            t.Error("invalid transition must not be forwarded")
            return
        }
        fmt.Fprint(w, `{"id":"a1","job_id":"j1","status":"pending"}`)
    }))

    // pending -> accepted skips the shortlist step.
    c, rec := patchStatusCtx("a1", `{"status":"accepted"}`)
    require.NoError(t, h.UpdateStatus(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Contains(t, rec.Body.String(), "pending")
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
    h := NewApplicationHandler(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
        t.Error("unknown status must not reach upstream")
    }))

    for _, body := range []string{`{"status":"archived"}`, `{"status":""}`, `{"status":"pending"}`} {
        c, rec := patchStatusCtx("a1", body)
        require.NoError(t, h.UpdateStatus(c))
        assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
    }
}

func TestApply(t *testing.T) {
    h := NewApplicationHandler(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, http.MethodPost, r.Method)
        assert.Equal(t, "/applications", r.URL.Path)
        var body struct {
            JobID       string `json:"job_id"`
            CoverLetter string `json:"cover_letter"`
        }
        assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
        assert.Equal(t, "j1", body.JobID)
        assert.Equal(t, "I want this job", body.CoverLetter)
        w.WriteHeader(http.StatusCreated)
        fmt.Fprint(w, `{"id":"a7","job_id":"j1","status":"pending"}`)
    }))

    req := httptest.NewRequest(http.MethodPost, "/v1/jobs/j1/apply",
        strings.NewReader(`{"cover_letter":"  I want this job  "}`))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := echo.New().NewContext(req, rec)
    c.SetParamNames("id")
    c.SetParamValues("j1")

    require.NoError(t, h.Apply(c))
    assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMine_EmptyList(t *testing.T) {
    h := NewApplicationHandler(newAPI(t, func(w http.ResponseWriter, r *http.Request) {
        fmt.Fprint(w, `{"data":null}`)
    }))

    c, rec := getCtx("/v1/applications")
    require.NoError(t, h.Mine(c))
    assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}
