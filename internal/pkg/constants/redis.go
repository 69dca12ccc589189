package constants

// Redis key formats
const (
	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{user_id|ip}
)
