package dto

// ─── Cashier management (admin) ──────────────────────────────────────────────

type CreateCashierRequest struct {
	Username string `json:"username"  validate:"required,min=3"`
	Password string `json:"password"  validate:"required,min=4"`
	FullName string `json:"full_name"`
	Role     string `json:"role"      validate:"omitempty,oneof=cashier admin"`
}

type SetStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=4"`
}

type CashierResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
	// AuditWarning is set when the management action committed but the
	// activity-log append failed.
	AuditWarning string `json:"audit_warning,omitempty"`
}

type ActiveUsernamesResponse struct {
	Usernames []string `json:"usernames"`
}

// ─── Activity log ────────────────────────────────────────────────────────────

type ActivityLogEntryResponse struct {
	CashierUsername string `json:"cashier_username"`
	Action          string `json:"action"`
	Details         string `json:"details,omitempty"`
	CreatedAt       string `json:"created_at"`
}
