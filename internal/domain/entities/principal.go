package entities

import "time"

// Role classifies what a principal is allowed to do.

type Role string

const (
	RoleBuyer   Role = "buyer"
	RoleBuilder Role = "builder"
	RoleStaff   Role = "staff"
)

// Principal is an authenticated caller. Authentication itself happens outside
// the core: the API consumes an opaque bearer token and resolves it to a
// Principal row.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (token-index): token
type Principal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Principal) IsAnonymous() bool { return p.ID == "" }
