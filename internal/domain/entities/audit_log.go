package entities

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionUpdate     AuditAction = "update"
	AuditActionDelete     AuditAction = "delete"
	AuditActionActivate   AuditAction = "activate"
	AuditActionDeactivate AuditAction = "deactivate"
)

// AuditLog is an append-only record of an administrative change.
// Changes holds {"before": ..., "after": ...}.
type AuditLog struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Action     AuditAction     `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	IPAddress  string          `json:"ip_address"`
	UserAgent  string          `json:"user_agent"`
	CreatedAt  time.Time       `json:"created_at"`
}

type AuditLogFilter struct {
	EntityType string
	EntityID   string
	UserID     string
	Limit      int
}
