package env

const (
	EnvHttpPort  = "HTTP_PORT"
	EnvJwtSecret = "JWT_SECRET"

	EnvEnginePath    = "ENGINE_PATH"
	EnvEngineTimeout = "ENGINE_TIMEOUT"

	EnvUsersFile = "USERS_FILE"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"

	EnvQuotaStatsEnabled       = "QUOTA_STATS_ENABLED"
	EnvQuotaStatsRedisAddr     = "QUOTA_STATS_REDIS_ADDR"
	EnvQuotaStatsRedisPassword = "QUOTA_STATS_REDIS_PASSWORD"
	EnvQuotaStatsRedisDB       = "QUOTA_STATS_REDIS_DB"
	EnvQuotaStatsPrefix        = "QUOTA_STATS_PREFIX"
	EnvQuotaStatsTTL           = "QUOTA_STATS_TTL"
)
