package constants

// Echo context keys set by the auth middleware
const (
	CtxKeyUserID   = "user_id"
	CtxKeyUserRole = "user_role"
)
