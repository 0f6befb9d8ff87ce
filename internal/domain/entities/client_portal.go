package entities

import "time"

// ClientInvitation grants a client's contact the right to register on the portal.
type ClientInvitation struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"client_id"`
	Email      string     `json:"email"`
	Token      string     `json:"token"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	InvitedBy  string     `json:"invited_by"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (i ClientInvitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// ClientPortalUser is a login for the read-only client portal.
type ClientPortalUser struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"client_id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PortalClaims is what a portal session token carries.
type PortalClaims struct {
	PortalUserID string
	ClientID     string
	Email        string
	ExpiresAt    time.Time
}

// EmailMessage is an outbound plain-text/HTML email.
type EmailMessage struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}
