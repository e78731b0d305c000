package dto

// SyncProfile is the identity-provider profile carried by the admin-sync
// webhook.
type SyncProfile struct {
	UserID string `json:"user_id" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name"`
}

// AdminSyncRequest is the body of POST /api/hooks/admin-sync. Action is
// checked in the handler so unsupported values get a specific message.
type AdminSyncRequest struct {
	Action  string       `json:"action" validate:"required"`
	Profile *SyncProfile `json:"profile" validate:"required"`
}

// SyncResultResponse reports the outcome of an admin-sync call.
type SyncResultResponse struct {
	Result string `json:"result"`
}

// ProfileRow is a profiles-table row as delivered by the database trigger.
type ProfileRow struct {
	UserID        string  `json:"user_id" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	FullName      string  `json:"full_name"`
	Role          string  `json:"role"`
	PayloadUserID *string `json:"payload_user_id,omitempty"`
}

// PayloadSyncRequest is the body of POST /api/functions/payload-sync.
type PayloadSyncRequest struct {
	Event           string      `json:"event" validate:"required,oneof=INSERT UPDATE DELETE"`
	Profile         *ProfileRow `json:"profile" validate:"required"`
	PreviousProfile *ProfileRow `json:"previous_profile,omitempty"`
}

// PayloadSyncResult reports the outcome of an external sync run.
type PayloadSyncResult struct {
	Skipped       bool    `json:"skipped,omitempty"`
	Result        string  `json:"result,omitempty"`
	PayloadUserID *string `json:"payload_user_id,omitempty"`
}
