package apiclient

import (
    "context"

    "github.com/workora/job-board-gateway/internal/model"
)

// JobInput is the payload for creating or updating a posting.  Zero fields
// are omitted on update so a partial PATCH leaves the rest untouched.
type JobInput struct {
    Title       string `json:"title,omitempty"`
    Description string `json:"description,omitempty"`
    Category    string `json:"category,omitempty"`
    Location    string `json:"location,omitempty"`
    SalaryMin   int    `json:"salary_min,omitempty"`
    SalaryMax   int    `json:"salary_max,omitempty"`
    Status      string `json:"status,omitempty"`
}

// ListJobs fetches the public job board.  No credential is required; when
// one is supplied it is forwarded so the core API can personalize.
func (c *Client) ListJobs(ctx context.Context, tok string) ([]model.Job, error) {
    raw, err := c.get(ctx, "/jobs", tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.Job](raw)
}

// GetJob fetches one posting by id.
func (c *Client) GetJob(ctx context.Context, tok, id string) (*model.Job, error) {
    raw, err := c.get(ctx, "/jobs/"+id, tok)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Job](raw)
}

// CompanyJobs lists the postings owned by the authenticated company.
func (c *Client) CompanyJobs(ctx context.Context, tok string) ([]model.Job, error) {
    raw, err := c.get(ctx, "/company/jobs", tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.Job](raw)
}

// CreateJob posts a new listing on behalf of the authenticated company.
func (c *Client) CreateJob(ctx context.Context, tok string, in JobInput) (*model.Job, error) {
    raw, err := c.send(ctx, "POST", "/jobs", tok, in, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Job](raw)
}

// UpdateJob patches an existing listing.
func (c *Client) UpdateJob(ctx context.Context, tok, id string, in JobInput) (*model.Job, error) {
    raw, err := c.send(ctx, "PATCH", "/jobs/"+id, tok, in, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Job](raw)
}

// DeleteJob removes a listing.
func (c *Client) DeleteJob(ctx context.Context, tok, id string) error {
    _, err := c.send(ctx, "DELETE", "/jobs/"+id, tok, nil, nil)
    return err
}
