package apiclient

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/workora/job-board-gateway/internal/model"
)

func TestDecodeList_EnvelopeShapes(t *testing.T) {
    bodies := map[string]string{
        "bare array":    `[{"id":"j1","title":"A"},{"id":"j2","title":"B"}]`,
        "data envelope": `{"data":[{"id":"j1","title":"A"},{"id":"j2","title":"B"}]}`,
        "posts alias":   `{"posts":[{"id":"j1","title":"A"},{"id":"j2","title":"B"}]}`,
    }
    for name, body := range bodies {
        t.Run(name, func(t *testing.T) {
            jobs, err := decodeList[model.Job]([]byte(body))
            require.NoError(t, err)
            require.Len(t, jobs, 2)
            assert.Equal(t, "j1", jobs[0].ID)
            assert.Equal(t, "j2", jobs[1].ID)
        })
    }
}

func TestDecodeList_NullNormalizesToEmpty(t *testing.T) {
    for name, body := range map[string]string{
        "null body":     `null`,
        "null data":     `{"data":null}`,
        "empty body":    ``,
        "empty array":   `[]`,
        "empty data":    `{"data":[]}`,
    } {
        t.Run(name, func(t *testing.T) {
            jobs, err := decodeList[model.Job]([]byte(body))
            require.NoError(t, err)
            assert.NotNil(t, jobs)
            assert.Empty(t, jobs)
        })
    }
}

func TestDecodeOne_EnvelopeShapes(t *testing.T) {
    bare, err := decodeOne[model.Job]([]byte(`{"id":"j1","title":"A"}`))
    require.NoError(t, err)
    assert.Equal(t, "j1", bare.ID)

    wrapped, err := decodeOne[model.Job]([]byte(`{"data":{"id":"j2","title":"B"}}`))
    require.NoError(t, err)
    assert.Equal(t, "j2", wrapped.ID)
}

func TestDecodeOne_Malformed(t *testing.T) {
    _, err := decodeOne[model.Job]([]byte(`{"data":"not an object"}`))
    var ae *APIError
    require.ErrorAs(t, err, &ae)
    assert.Equal(t, KindTransport, ae.Kind)
}
