package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Mongo     MongoConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	SES       SESConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig
	Business  BusinessConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Chicago"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	SettingsTTL time.Duration `envconfig:"REDIS_SETTINGS_TTL" default:"5m"`
}

type MongoConfig struct {
	URI            string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database       string        `envconfig:"MONGO_DATABASE" default:"partyrental"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// SES is optional; an empty region disables email delivery.
type SESConfig struct {
	Region          string `envconfig:"SES_REGION" default:""`
	AccessKeyID     string `envconfig:"SES_ACCESS_KEY_ID" default:""`
	SecretAccessKey string `envconfig:"SES_SECRET_ACCESS_KEY" default:""`
	Sender          string `envconfig:"SES_SENDER" default:""`
}

func (c SESConfig) Enabled() bool {
	return c.Region != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Sender != ""
}

type SchedulerConfig struct {
	Enabled              bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	NotificationInterval time.Duration `envconfig:"SCHEDULER_NOTIFICATION_INTERVAL" default:"30s"`
	NotificationBatch    int           `envconfig:"SCHEDULER_NOTIFICATION_BATCH" default:"20"`
	NotificationLease    time.Duration `envconfig:"SCHEDULER_NOTIFICATION_LEASE" default:"5m"`
	MaxAttempts          int           `envconfig:"SCHEDULER_MAX_ATTEMPTS" default:"5"`
	CompletionCron       string        `envconfig:"SCHEDULER_COMPLETION_CRON" default:"15 3 * * *"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	Burst             int `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type BusinessConfig struct {
	TimeZone     string `envconfig:"BUSINESS_TIMEZONE" default:"America/Chicago"`
	Name         string `envconfig:"BUSINESS_NAME" default:"Party Rentals"`
	ContactEmail string `envconfig:"BUSINESS_CONTACT_EMAIL" default:""`
	// MaxRentalDays bounds one booking, rental and return day included.
	MaxRentalDays int `envconfig:"BUSINESS_MAX_RENTAL_DAYS" default:"14"`
}

// Location falls back to time.Local when the zone name cannot be loaded.
func (c BusinessConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Chicago",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:        "localhost:16379",
			SettingsTTL: time.Minute,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27018",
			Database:       "partyrental_test",
			ConnectTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Chicago",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-party-rental",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Scheduler: SchedulerConfig{
			Enabled: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 1000,
			Burst:             100,
		},
		Business: BusinessConfig{
			TimeZone:      "America/Chicago",
			Name:          "Party Rentals",
			MaxRentalDays: 14,
		},
	}
}
