package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix only matters for fields without a tag.
const EnvPrefix = "YBT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error
// messages).
const (
	EnvAppEnv            = "YBT_APP_ENV"
	EnvPort              = "YBT_APP_PORT"
	EnvDBDSN             = "YBT_DB_DSN"
	EnvDBHost            = "YBT_DB_HOST"
	EnvDBUser            = "YBT_DB_USER"
	EnvDBName            = "YBT_DB_NAME"
	EnvRedisURL          = "YBT_REDIS_URL"
	EnvJWTSecret         = "YBT_JWT_SECRET"
	EnvJWTIssuer         = "YBT_JWT_ISSUER"
	EnvAdminPasswordHash = "YBT_ADMIN_PASSWORD_HASH"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
