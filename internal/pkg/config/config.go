package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/piresc/wheelshare/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "rides-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "wheelshare")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Broker config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")
	configs.Events.Broker = GetEnv("EVENTS_BROKER", "nats")
	configs.Events.GeohashPrecision = uint(GetEnvAsInt("EVENTS_GEOHASH_PRECISION", 5))
	configs.Events.PublishRetries = GetEnvAsInt("EVENTS_PUBLISH_RETRIES", 2)
	configs.Events.BreakerFailures = GetEnvAsInt("EVENTS_BREAKER_FAILURES", 5)
	configs.Events.BreakerCooldown = GetEnvAsInt("EVENTS_BREAKER_COOLDOWN_SECONDS", 30)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "wheelshare")

	// Pricing config
	configs.Pricing.BaseFare = GetEnvAsFloat("PRICING_BASE_FARE", 50)
	configs.Pricing.PerKmRate = GetEnvAsFloat("PRICING_PER_KM_RATE", 15)
	configs.Pricing.CommissionPercent = GetEnvAsFloat("PRICING_COMMISSION_PERCENT", 10)

	// Dispatch config
	configs.Dispatch.RadiusKm = GetEnvAsFloat("DISPATCH_RADIUS_KM", 10)

	// Rides config
	configs.Rides.AcceptClientFare = GetEnvAsBool("RIDES_ACCEPT_CLIENT_FARE", false)

	// Rate limit config
	configs.RateLimit.Enabled = GetEnvAsBool("RATE_LIMIT_ENABLED", true)
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT_LIMIT", 120)
	configs.RateLimit.PeriodSeconds = GetEnvAsInt("RATE_LIMIT_PERIOD_SECONDS", 60)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// env reads process environment through viper so lookups share one source
var env = newEnv()

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := cast.ToIntE(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := cast.ToBoolE(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := cast.ToFloat64E(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}
