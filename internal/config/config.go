package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	RedisAddress    string
	CacheTTL        time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	EmailFrom       string
	AdminEmail      string
	FrontendURL     string
	OTPTTL          time.Duration
	VerificationTTL time.Duration
	MailWorkers     int
	MailQueueSize   int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultCacheTTL        = 5 * time.Minute
	defaultSMTPPort        = 587
	defaultFrontendURL     = "http://localhost:3000"
	defaultOTPTTL          = 10 * time.Minute
	defaultVerificationTTL = 24 * time.Hour
	defaultMailWorkers     = 2
	defaultMailQueueSize   = 64
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		RedisAddress:    getString(lookup, "REDIS_ADDRESS", ""),
		CacheTTL:        getDuration(lookup, "CACHE_TTL", defaultCacheTTL),
		SMTPHost:        getString(lookup, "SMTP_HOST", ""),
		SMTPPort:        getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:    getString(lookup, "SMTP_USERNAME", ""),
		SMTPPassword:    getString(lookup, "SMTP_PASSWORD", ""),
		EmailFrom:       getString(lookup, "EMAIL_FROM", ""),
		AdminEmail:      getString(lookup, "ADMIN_EMAIL", ""),
		FrontendURL:     getString(lookup, "FRONTEND_URL", defaultFrontendURL),
		OTPTTL:          getDuration(lookup, "OTP_TTL", defaultOTPTTL),
		VerificationTTL: getDuration(lookup, "VERIFICATION_TTL", defaultVerificationTTL),
		MailWorkers:     getInt(lookup, "MAIL_WORKERS", defaultMailWorkers),
		MailQueueSize:   getInt(lookup, "MAIL_QUEUE_SIZE", defaultMailQueueSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("lodgemart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cacheTTLStr        = cfg.CacheTTL.String()
		otpTTLStr          = cfg.OTPTTL.String()
		verificationTTLStr = cfg.VerificationTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the product cache (empty for in-memory)")
	fs.StringVar(&cacheTTLStr, "cache-ttl", cacheTTLStr, "Product cache entry lifetime")
	fs.StringVar(&cfg.SMTPHost, "smtp-host", cfg.SMTPHost, "SMTP relay host (empty disables outbound mail)")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", cfg.SMTPPort, "SMTP relay port")
	fs.StringVar(&cfg.EmailFrom, "email-from", cfg.EmailFrom, "Sender address for outbound mail")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Recipient of order notifications")
	fs.StringVar(&cfg.FrontendURL, "frontend-url", cfg.FrontendURL, "Base URL used in verification links")
	fs.StringVar(&otpTTLStr, "otp-ttl", otpTTLStr, "Order OTP lifetime")
	fs.StringVar(&verificationTTLStr, "verification-ttl", verificationTTLStr, "Email verification token lifetime")
	fs.IntVar(&cfg.MailWorkers, "mail-workers", cfg.MailWorkers, "Number of concurrent notification workers")
	fs.IntVar(&cfg.MailQueueSize, "mail-queue", cfg.MailQueueSize, "Capacity of the notification queue")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cache ttl: %w", err)
	}

	if cfg.OTPTTL, err = time.ParseDuration(otpTTLStr); err != nil {
		return nil, fmt.Errorf("invalid otp ttl: %w", err)
	}

	if cfg.VerificationTTL, err = time.ParseDuration(verificationTTLStr); err != nil {
		return nil, fmt.Errorf("invalid verification ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = defaultOTPTTL
	}

	if cfg.VerificationTTL <= 0 {
		cfg.VerificationTTL = defaultVerificationTTL
	}

	if cfg.MailWorkers <= 0 {
		cfg.MailWorkers = defaultMailWorkers
	}

	if cfg.MailQueueSize <= 0 {
		cfg.MailQueueSize = defaultMailQueueSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
