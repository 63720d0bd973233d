package model

// Role is the discriminator claim embedded in the session credential.  It
// selects which "who am I" endpoint the bootstrap uses and which route
// groups the session may enter.
type Role string

const (
    RoleUser    Role = "user"    // job seeker / freelancer account
    RoleCompany Role = "company" // employer account
    RoleAdmin   Role = "admin"   // back-office account
)

// Valid reports whether r is one of the known role values.
func (r Role) Valid() bool {
    switch r {
    case RoleUser, RoleCompany, RoleAdmin:
        return true
    }
    return false
}

// Principal is the decoded profile held for the lifetime of a session.  It
// is rehydrated from the stored credential on every bootstrap and discarded
// on logout or 401.  A principal is only ever populated from a valid,
// non-expired credential; it is never independent of the stored token.
//
// The core API is inconsistent about the company logo field: company
// profiles come back with either "logo" or "companyLogo".  Normalize()
// folds both into CompanyLogo so every consumer sees one shape.
type Principal struct {
    ID            string `json:"id"`
    Name          string `json:"name"`
    Email         string `json:"email"`
    Role          Role   `json:"role"`
    Avatar        string `json:"avatar,omitempty"`
    Verified      bool   `json:"verified"`
    Blocked       bool   `json:"blocked,omitempty"`
    CompanyLogo   string `json:"companyLogo,omitempty"`
    Logo          string `json:"logo,omitempty"` // raw upstream alias, cleared by Normalize
}

// Normalize folds upstream field aliases into their canonical form.  It is
// applied exactly once, when the bootstrap transitions to authenticated.
func (p *Principal) Normalize() {
    if p.CompanyLogo == "" && p.Logo != "" {
        p.CompanyLogo = p.Logo
    }
    p.Logo = ""
}
