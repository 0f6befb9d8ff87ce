package entities

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleUser       Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAccountant, RoleUser:
		return true
	}
	return false
}

// User is the local mirror of an identity-provider account.
type User struct {
	ID           string     `json:"id"`
	ExternalID   string     `json:"external_id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor identifies who performs an operation, for permission checks and audit rows.
type Actor struct {
	UserID    string
	Email     string
	Role      Role
	IPAddress string
	UserAgent string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Identity is what an identity provider asserts about a bearer token.
type Identity struct {
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       Role   `json:"role,omitempty"`
}

// AuthSession is returned by sign-in and sign-up.
type AuthSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  Identity  `json:"identity"`
}

type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// IdentityEventType values follow the provider's webhook event names.
type IdentityEventType string

const (
	IdentityEventUserCreated IdentityEventType = "user.created"
	IdentityEventUserUpdated IdentityEventType = "user.updated"
	IdentityEventUserDeleted IdentityEventType = "user.deleted"
)

type IdentityEvent struct {
	Type     IdentityEventType
	Identity Identity
}
