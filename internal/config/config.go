package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Addr        string
	SlowRequest time.Duration
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
	Seed         bool
}

type RedisConfig struct {
	Addr string
	TTL  time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type AuthConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	AdminUsername     string
	AdminPasswordHash string
}

type RateConfig struct {
	RPS   float64
	Burst int
}

type WebConfig struct {
	Addr       string
	APIBaseURL string
}

type Config struct {
	HTTP        HTTPConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
	Auth        AuthConfig
	Rate        RateConfig
	Web         WebConfig
	MaxPageSize int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.slow_request", 4*time.Second)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.seed", false)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("catalog.max_page_size", 100)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 15*time.Minute)
	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password_hash", "")
	v.SetDefault("rate.rps", 10)
	v.SetDefault("rate.burst", 20)
	v.SetDefault("web.addr", ":8081")
	v.SetDefault("web.api_base_url", "")
}

// Load reads an optional .env file, then the environment. Keys map to
// variables by upper-casing and replacing dots with underscores
// (database.url is DATABASE_URL).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := v.BindEnv("web.api_base_url", "API_BASE_URL", "WEB_API_BASE_URL"); err != nil {
		return nil, errors.Wrap(err, "bind API_BASE_URL")
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:        v.GetString("http.addr"),
			SlowRequest: v.GetDuration("http.slow_request"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("database.url"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
			AutoMigrate:  v.GetBool("database.auto_migrate"),
			Seed:         v.GetBool("database.seed"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("redis.addr"),
			TTL:  v.GetDuration("redis.ttl"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Auth: AuthConfig{
			JWTSecret:         v.GetString("auth.jwt_secret"),
			TokenTTL:          v.GetDuration("auth.token_ttl"),
			AdminUsername:     v.GetString("auth.admin_username"),
			AdminPasswordHash: v.GetString("auth.admin_password_hash"),
		},
		Rate: RateConfig{
			RPS:   v.GetFloat64("rate.rps"),
			Burst: v.GetInt("rate.burst"),
		},
		Web: WebConfig{
			Addr:       v.GetString("web.addr"),
			APIBaseURL: v.GetString("web.api_base_url"),
		},
		MaxPageSize: v.GetInt("catalog.max_page_size"),
	}
}

// AdminEnabled reports whether login and the admin routes should be served.
func (c *Config) AdminEnabled() bool {
	return c.Auth.JWTSecret != ""
}

// ValidateAPI checks the settings the API server needs.
func (c *Config) ValidateAPI() error {
	var problems []string
	if c.Database.URL == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if c.MaxPageSize < 1 {
		problems = append(problems, "CATALOG_MAX_PAGE_SIZE must be at least 1")
	}
	if c.AdminEnabled() && c.Auth.AdminPasswordHash == "" {
		problems = append(problems, "AUTH_ADMIN_PASSWORD_HASH is required when AUTH_JWT_SECRET is set")
	}
	if c.Rate.RPS < 0 || c.Rate.Burst < 0 {
		problems = append(problems, "RATE_RPS and RATE_BURST cannot be negative")
	}
	return joinProblems(problems)
}

// ValidateWeb checks the settings the web frontend needs.
func (c *Config) ValidateWeb() error {
	var problems []string
	if c.Web.APIBaseURL == "" {
		problems = append(problems, "API_BASE_URL is required")
	} else if u, err := url.Parse(c.Web.APIBaseURL); err != nil || !u.IsAbs() || u.Host == "" {
		problems = append(problems, "API_BASE_URL must be an absolute URL")
	}
	return joinProblems(problems)
}

func joinProblems(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return errors.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
