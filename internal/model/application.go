package model

import "time"

// Application records a user's application to a job posting.  Status moves
// through a small lifecycle driven by explicit company actions; the gateway
// renders the current state and forwards transition requests, it never
// advances the state on its own.
//
// Fields:
//  ID          - identifier assigned by the core API.
//  JobID       - the posting applied to.
//  JobTitle    - denormalized posting title for list rendering.
//  UserID      - applicant account.
//  UserName    - denormalized applicant display name.
//  CoverLetter - free-form text submitted with the application.
//  Status      - lifecycle state, see the ApplicationStatus* constants.
//  CreatedAt   - submission timestamp.
type Application struct {
    ID          string    `json:"id"`
    JobID       string    `json:"job_id"`
    JobTitle    string    `json:"job_title,omitempty"`
    UserID      string    `json:"user_id"`
    UserName    string    `json:"user_name,omitempty"`
    CoverLetter string    `json:"cover_letter,omitempty"`
    Status      string    `json:"status"`
    CreatedAt   time.Time `json:"created_at"`
}

// Application lifecycle states.  Transitions are triggered by company
// actions: pending -> shortlisted -> accepted | rejected.  Rejection is
// also allowed straight from pending.
const (
    ApplicationStatusPending     = "pending"
    ApplicationStatusShortlisted = "shortlisted"
    ApplicationStatusAccepted    = "accepted"
    ApplicationStatusRejected    = "rejected"
)

// ValidApplicationTransition reports whether moving from one application
// status to another is allowed.  The gateway checks this before calling the
// core API so an impossible transition fails fast with a validation error
// instead of a round-trip.
func ValidApplicationTransition(from, to string) bool {
    switch from {
    case ApplicationStatusPending:
        return to == ApplicationStatusShortlisted || to == ApplicationStatusRejected
    case ApplicationStatusShortlisted:
        return to == ApplicationStatusAccepted || to == ApplicationStatusRejected
    }
    return false
}
