package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	Events    EventsConfig
	JWT       JWTConfig
	Pricing   PricingConfig
	Dispatch  DispatchConfig
	Rides     RidesConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address used when NSQ carries ride events
type NSQConfig struct {
	Address string
}

// EventsConfig selects the broker ride events are published to
type EventsConfig struct {
	Broker           string // "nats", "nsq" or "none"
	GeohashPrecision uint
	PublishRetries   int
	BreakerFailures  int
	BreakerCooldown  int // seconds an open breaker waits before probing the broker again
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PricingConfig holds the fare tariff
type PricingConfig struct {
	BaseFare          float64 `json:"base_fare"`
	PerKmRate         float64 `json:"per_km_rate"`
	CommissionPercent float64 `json:"commission_percent"`
}

// DispatchConfig contains nearby-ride search configuration
type DispatchConfig struct {
	RadiusKm float64 `json:"radius_km"`
}

// RidesConfig contains rides service specific configuration
type RidesConfig struct {
	AcceptClientFare bool `json:"accept_client_fare"` // honour a positive client fare estimate instead of the server quote
}

// RateLimitConfig bounds request rates on polling endpoints
type RateLimitConfig struct {
	Enabled       bool
	Limit         int
	PeriodSeconds int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
