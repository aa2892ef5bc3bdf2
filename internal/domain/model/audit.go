package model

import (
	"encoding/json"
	"time"
)

// Audit actions recorded by the console.
const (
	AuditLoginSucceeded = "login.succeeded"
	AuditLoginFailed    = "login.failed"
	AuditLogout         = "logout"
	AuditSessionDropped = "session.dropped"
	AuditPasswordReset  = "password.reset_requested"
	AuditProductCreated = "product.created"
	AuditProductUpdated = "product.updated"
	AuditProductDeleted = "product.deleted"
	AuditImageUploaded  = "product.image_uploaded"
	AuditBrandAdded     = "brand.added"
	AuditCategoryAdded  = "category.added"
	AuditSupplierAdded  = "supplier.added"
	AuditUserRegistered = "user.registered"
	AuditDoctorAdded    = "doctor.added"
	AuditBookingAdded   = "booking.added"
	AuditOrderPrefix    = "order."
)

// AuditEvent is one row of the console's audit trail.
type AuditEvent struct {
	ID         string          `json:"id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Actor      string          `json:"actor"`
	Role       string          `json:"role"`
	Action     string          `json:"action"`
	Subject    string          `json:"subject"`
	Detail     json.RawMessage `json:"detail,omitempty"`
}
