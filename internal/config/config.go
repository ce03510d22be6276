package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Storage       StorageConfig       `yaml:"storage"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Export        ExportConfig        `yaml:"export"`
	Events        EventsConfig        `yaml:"events"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
}

// Backend drivers for storage, export and events.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMinIO    = "minio"
	DriverRabbitMQ = "rabbitmq"
)

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"                  env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"                  env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"          env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"         env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"          env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT"      env-default:"10s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"600"`
}

// StorageConfig selects the key-value backend holding the entity collections.
type StorageConfig struct {
	Driver        string `yaml:"driver"          env:"STORAGE_DRIVER"          env-default:"memory"`
	KeyPrefix     string `yaml:"key_prefix"      env:"STORAGE_KEY_PREFIX"      env-default:"bi_"`
	SeedOnStartup bool   `yaml:"seed_on_startup" env:"STORAGE_SEED_ON_STARTUP" env-default:"true"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the postgres driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds optional bearer-token settings. Auth is disabled when JWTSecret is empty.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"powerbi-sub001"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// Enabled reports whether bearer tokens are validated.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// ExportConfig selects where report exports are stored.
type ExportConfig struct {
	Driver         string `yaml:"driver"          env:"EXPORT_DRIVER"          env-default:"memory"`
	Endpoint       string `yaml:"endpoint"        env:"EXPORT_ENDPOINT"`
	PublicEndpoint string `yaml:"public_endpoint" env:"EXPORT_PUBLIC_ENDPOINT"`
	AccessKey      string `yaml:"access_key"      env:"EXPORT_ACCESS_KEY"`
	SecretKey      string `yaml:"secret_key"      env:"EXPORT_SECRET_KEY"`
	Bucket         string `yaml:"bucket"          env:"EXPORT_BUCKET"          env-default:"report-exports"`
	UseSSL         bool   `yaml:"use_ssl"         env:"EXPORT_USE_SSL"         env-default:"false"`
}

// EventsConfig selects where domain events are published.
type EventsConfig struct {
	Driver   string `yaml:"driver"   env:"EVENTS_DRIVER"   env-default:"memory"`
	URL      string `yaml:"url"      env:"EVENTS_URL"`
	Exchange string `yaml:"exchange" env:"EVENTS_EXCHANGE" env-default:"bi.events"`
}

// NotificationsConfig holds notification housekeeping settings.
type NotificationsConfig struct {
	RetentionDays int `yaml:"retention_days" env:"NOTIFICATIONS_RETENTION_DAYS" env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
