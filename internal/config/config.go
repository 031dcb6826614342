// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var ErrMissing = errors.New("required environment variable is not set")

// Config holds all settings of the backend.
type Config struct {
	APIURL *url.URL

	Database Database

	AuthSecret       string
	AuthIssuer       string
	SuperAdminEmails []string

	StripeSecretKey     string
	StripeWebhookSecret string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string

	TelegramBotToken      string
	TelegramWebhookSecret string

	RateLimitPerMinute int
	JobInterval        time.Duration
	JobWorkers         int
}

// Database configures the database connection. Postgres is used when
// Host is set, sqlite at SQLitePath otherwise.
type Database struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

// Load reads a .env file in the working directory if one exists and
// then parses the configuration from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	var c Config

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, fmt.Errorf("%w: API_URL", ErrMissing)
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("API_URL must be an absolute URL, got %q", apiURL)
	}
	c.APIURL = u

	c.AuthSecret = os.Getenv("AUTH_JWT_SECRET")
	if c.AuthSecret == "" {
		return Config{}, fmt.Errorf("%w: AUTH_JWT_SECRET", ErrMissing)
	}
	c.AuthIssuer = os.Getenv("AUTH_ISSUER")

	for _, email := range strings.Split(os.Getenv("SUPER_ADMIN_EMAILS"), ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			c.SuperAdminEmails = append(c.SuperAdminEmails, email)
		}
	}

	c.Database = Database{
		Host:       os.Getenv("DB_HOST"),
		Port:       stringOr("DB_PORT", "5432"),
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		Name:       os.Getenv("DB_NAME"),
		SQLitePath: stringOr("SQLITE_PATH", "data/hivebudget.db"),
	}

	c.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	c.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	c.CheckoutSuccessURL = stringOr("CHECKOUT_SUCCESS_URL", c.APIURL.String()+"/checkout/success?session_id={CHECKOUT_SESSION_ID}")
	c.CheckoutCancelURL = stringOr("CHECKOUT_CANCEL_URL", c.APIURL.String()+"/checkout/canceled")

	c.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	c.TelegramWebhookSecret = os.Getenv("TELEGRAM_WEBHOOK_SECRET")

	if c.RateLimitPerMinute, err = intOr("RATE_LIMIT_PER_MINUTE", 120); err != nil {
		return Config{}, err
	}

	if c.JobWorkers, err = intOr("JOB_WORKERS", 4); err != nil {
		return Config{}, err
	}

	c.JobInterval = time.Hour
	if v, ok := os.LookupEnv("JOB_INTERVAL"); ok {
		c.JobInterval, err = time.ParseDuration(v)
		if err != nil || c.JobInterval <= 0 {
			return Config{}, fmt.Errorf("JOB_INTERVAL must be a positive duration, got %q", v)
		}
	}

	return c, nil
}

// IsSuperAdminEmail reports if the email is configured as super admin.
func (c Config) IsSuperAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.SuperAdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func stringOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return i, nil
}
