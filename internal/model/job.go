package model

import "time"

// Job represents a job posting as served by the core API.  The gateway
// never stores jobs; it forwards them between the browser and the core
// API, so this struct doubles as the normalized wire shape in both
// directions.
//
// Fields:
//  ID          - identifier assigned by the core API.
//  Title       - posting title.
//  Description - full description text.
//  Category    - free-form category label used for browse filtering.
//  Location    - location label ("Remote" is a plain value, not special).
//  SalaryMin   - lower salary bound, zero when unspecified.
//  SalaryMax   - upper salary bound, zero when unspecified.
//  CompanyID   - owning company account.
//  CompanyName - denormalized company display name.
//  Status      - moderation state (pending, approved, closed, removed).
//  CreatedAt   - creation timestamp.
type Job struct {
    ID          string    `json:"id"`
    Title       string    `json:"title"`
    Description string    `json:"description"`
    Category    string    `json:"category,omitempty"`
    Location    string    `json:"location,omitempty"`
    SalaryMin   int       `json:"salary_min,omitempty"`
    SalaryMax   int       `json:"salary_max,omitempty"`
    CompanyID   string    `json:"company_id"`
    CompanyName string    `json:"company_name,omitempty"`
    Status      string    `json:"status,omitempty"`
    CreatedAt   time.Time `json:"created_at"`
}

// Job moderation states as used by the admin back-office.
const (
    JobStatusPending  = "pending"
    JobStatusApproved = "approved"
    JobStatusClosed   = "closed"
    JobStatusRemoved  = "removed"
)

// JobFilter captures the browse filters the gateway applies to job lists.
// Filtering was done client-side in the original application; it now runs
// in the gateway so every consumer gets the same semantics.
type JobFilter struct {
    Query    string // case-insensitive substring match on title/description
    Category string // exact match, empty means any
    Location string // exact match, empty means any
}

// Matches reports whether the job passes the filter.
func (f JobFilter) Matches(j Job) bool {
    if f.Category != "" && !equalFold(j.Category, f.Category) {
        return false
    }
    if f.Location != "" && !equalFold(j.Location, f.Location) {
        return false
    }
    if f.Query == "" {
        return true
    }
    return containsFold(j.Title, f.Query) || containsFold(j.Description, f.Query)
}
