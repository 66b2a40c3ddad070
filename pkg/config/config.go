package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Site      SiteConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"YBT_APP_ENV" required:"true"`
	Port         string `envconfig:"YBT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"YBT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"YBT_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"YBT_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SiteConfig identifies the storefront this backend serves. The site name is
// embedded into enquiry message blobs, so changing it affects how historical
// messages render alongside new ones.
type SiteConfig struct {
	Name     string `envconfig:"YBT_SITE_NAME" default:"YourBrand Tours"`
	ID       string `envconfig:"YBT_SITE_ID" default:"yourbrand-tours"`
	Timezone string `envconfig:"YBT_SITE_TIMEZONE" default:"UTC"`
}

type DBConfig struct {
	DSN    string `envconfig:"YBT_DB_DSN"`
	Driver string `envconfig:"YBT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"YBT_DB_HOST"`
	LegacyPort     int    `envconfig:"YBT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"YBT_DB_USER"`
	LegacyPassword string `envconfig:"YBT_DB_PASSWORD"`
	LegacyName     string `envconfig:"YBT_DB_NAME"`
	LegacySSLMode  string `envconfig:"YBT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"YBT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"YBT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"YBT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"YBT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"YBT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"YBT_REDIS_ADDR"`
	Password     string        `envconfig:"YBT_REDIS_PASSWORD"`
	DB           int           `envconfig:"YBT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"YBT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"YBT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"YBT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"YBT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"YBT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"YBT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"YBT_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"YBT_JWT_EXPIRATION_MINUTES" default:"60"`
}

// AdminConfig carries the dashboard credential and session window. The
// password is supplied as an Argon2id hash, never as plaintext.
type AdminConfig struct {
	PasswordHash string        `envconfig:"YBT_ADMIN_PASSWORD_HASH" required:"true"`
	SessionTTL   time.Duration `envconfig:"YBT_ADMIN_SESSION_TTL" default:"24h"`

	ArgonMemoryKB    int `envconfig:"YBT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"YBT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"YBT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"YBT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"YBT_ARGON_KEY_LEN" default:"32"`
}

type RateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"YBT_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit    int           `envconfig:"YBT_RATE_LIMIT_LOGIN_IP_LIMIT" default:"10"`
	EnquiryWindow   time.Duration `envconfig:"YBT_RATE_LIMIT_ENQUIRY_WINDOW" default:"5m"`
	EnquiryIPLimit  int           `envconfig:"YBT_RATE_LIMIT_ENQUIRY_IP_LIMIT" default:"20"`
	EnquiryEmailLim int           `envconfig:"YBT_RATE_LIMIT_ENQUIRY_EMAIL_LIMIT" default:"5"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
