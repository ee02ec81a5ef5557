package domain

// ActionLog is an append-only audit record. Unexpected failures are written
// here with the acting user and client IP while the caller only sees a
// generic error.
type ActionLog struct {
	ID        int32  `json:"id"`
	UserID    int32  `json:"user_id"`
	ClientIP  string `json:"client_ip"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	CreatedOn string `json:"created_on"`
}
