package config

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	StorageDriverMemory = "memory"
	StorageDriverRedis  = "redis"

	EnvAppEnv        = "BOOKMARKET_APP_ENV"
	EnvPort          = "BOOKMARKET_APP_PORT"
	EnvLogLevel      = "BOOKMARKET_LOG_LEVEL"
	EnvStorageDriver = "BOOKMARKET_STORAGE_DRIVER"
	EnvRedisURL      = "BOOKMARKET_REDIS_URL"
	EnvGeminiAPIKey  = "BOOKMARKET_GEMINI_API_KEY"
)
