package apiclient

import (
    "context"
    "net/url"

    "github.com/workora/job-board-gateway/internal/model"
)

// AdminListUsers fetches every account for the moderation table.
func (c *Client) AdminListUsers(ctx context.Context, tok string) ([]model.Principal, error) {
    raw, err := c.get(ctx, "/admin/users", tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.Principal](raw)
}

// BlockUser blocks an account.
func (c *Client) BlockUser(ctx context.Context, tok, id string) error {
    _, err := c.send(ctx, "POST", "/admin/users/"+id+"/block", tok, nil, nil)
    return err
}

// UnblockUser lifts a block.
func (c *Client) UnblockUser(ctx context.Context, tok, id string) error {
    _, err := c.send(ctx, "POST", "/admin/users/"+id+"/unblock", tok, nil, nil)
    return err
}

// AdminListJobs lists postings for moderation, optionally filtered by
// status ("pending" being the usual queue).
func (c *Client) AdminListJobs(ctx context.Context, tok, status string) ([]model.Job, error) {
    path := "/admin/jobs"
    if status != "" {
        path += "?status=" + url.QueryEscape(status)
    }
    raw, err := c.get(ctx, path, tok)
    if err != nil {
        return nil, err
    }
    return decodeList[model.Job](raw)
}

// ApproveJob clears a posting through moderation.
func (c *Client) ApproveJob(ctx context.Context, tok, id string) error {
    _, err := c.send(ctx, "POST", "/admin/jobs/"+id+"/approve", tok, nil, nil)
    return err
}

// RemoveJob takes a posting down.
func (c *Client) RemoveJob(ctx context.Context, tok, id string) error {
    _, err := c.send(ctx, "DELETE", "/admin/jobs/"+id, tok, nil, nil)
    return err
}

// Stats fetches the back-office dashboard summary.
func (c *Client) Stats(ctx context.Context, tok string) (*model.AdminStats, error) {
    raw, err := c.get(ctx, "/admin/stats", tok)
    if err != nil {
        return nil, err
    }
    return decodeOne[model.AdminStats](raw)
}
