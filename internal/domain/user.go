package domain

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperadmin Role = "SUPERADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	// DateOfBirth and LicenseIssueDate are yyyy-mm-dd and feed the
	// eligibility check only; the rental workflow never mutates them.
	DateOfBirth      string `json:"date_of_birth"`
	LicenseIssueDate string `json:"license_issue_date"`
	CreatedOn        string `json:"created_on"`
	UpdatedOn        string `json:"updated_on"`
}

// Principal is the authenticated caller, derived from JWT claims by the auth
// middleware and passed explicitly into every operation.
type Principal struct {
	UserID int32
	Email  string
	Role   Role
}

// IsAdmin reports whether the principal may perform back-office actions.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperadmin
}
