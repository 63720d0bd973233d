package apiclient

import (
    "context"

    "github.com/workora/job-board-gateway/internal/model"
)

type applyReq struct {
    JobID       string `json:"job_id"`
    CoverLetter string `json:"cover_letter,omitempty"`
}

type statusReq struct {
    Status string `json:"status"`
}

// Apply submits an application to a posting on behalf of the authenticated
// user.
func (c *Client) Apply(ctx context.Context, tok, jobID, coverLetter string) (*model.Application, error) {
    raw, err := c.send(ctx, "POST", "/applications", tok, applyReq{JobID: jobID, CoverLetter: coverLetter}, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Application](raw)
}

// MyApplications lists the authenticated user's applications.
func (c *Client) MyApplications(ctx context.Context, tok string) ([]model.Application, error) {
    raw, err := c.get(ctx, "/applications", tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.Application](raw)
}

// JobApplications lists all applications to one of the company's postings.
func (c *Client) JobApplications(ctx context.Context, tok, jobID string) ([]model.Application, error) {
    raw, err := c.get(ctx, "/jobs/"+jobID+"/applications", tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.Application](raw)
}

// GetApplication fetches one application by id.
func (c *Client) GetApplication(ctx context.Context, tok, id string) (*model.Application, error) {
    raw, err := c.get(ctx, "/applications/"+id, tok)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Application](raw)
}

// UpdateApplicationStatus advances an application through its lifecycle.
// Transition validity is checked by the handler before this call.
func (c *Client) UpdateApplicationStatus(ctx context.Context, tok, id, status string) (*model.Application, error) {
    raw, err := c.send(ctx, "PATCH", "/applications/"+id, tok, statusReq{Status: status}, nil)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.Application](raw)
}
