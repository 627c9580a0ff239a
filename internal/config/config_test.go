package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/lodgemart",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("run address = %q, want %q", cfg.RunAddress, defaultRunAddress)
	}
	if cfg.JWTSecret != defaultJWTSecret {
		t.Errorf("jwt secret = %q, want default", cfg.JWTSecret)
	}
	if cfg.CacheTTL != defaultCacheTTL {
		t.Errorf("cache ttl = %v, want %v", cfg.CacheTTL, defaultCacheTTL)
	}
	if cfg.SMTPPort != defaultSMTPPort {
		t.Errorf("smtp port = %d, want %d", cfg.SMTPPort, defaultSMTPPort)
	}
	if cfg.FrontendURL != defaultFrontendURL {
		t.Errorf("frontend url = %q, want %q", cfg.FrontendURL, defaultFrontendURL)
	}
	if cfg.OTPTTL != defaultOTPTTL {
		t.Errorf("otp ttl = %v, want %v", cfg.OTPTTL, defaultOTPTTL)
	}
	if cfg.VerificationTTL != defaultVerificationTTL {
		t.Errorf("verification ttl = %v, want %v", cfg.VerificationTTL, defaultVerificationTTL)
	}
	if cfg.MailWorkers != defaultMailWorkers || cfg.MailQueueSize != defaultMailQueueSize {
		t.Errorf("mail pool = %d/%d, want %d/%d", cfg.MailWorkers, cfg.MailQueueSize, defaultMailWorkers, defaultMailQueueSize)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("shutdown timeout = %v, want %v", cfg.ShutdownTimeout, defaultShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"RUN_ADDRESS":      ":7070",
		"DATABASE_URI":     "postgres://db/lodgemart",
		"JWT_SECRET":       "env-secret",
		"REDIS_ADDRESS":    "redis:6379",
		"CACHE_TTL":        "90s",
		"SMTP_HOST":        "smtp.example.com",
		"SMTP_PORT":        "2525",
		"SMTP_USERNAME":    "mailer",
		"SMTP_PASSWORD":    "hunter2",
		"EMAIL_FROM":       "noreply@example.com",
		"ADMIN_EMAIL":      "ops@example.com",
		"FRONTEND_URL":     "https://shop.example.com",
		"OTP_TTL":          "5m",
		"VERIFICATION_TTL": "48h",
		"MAIL_WORKERS":     "4",
		"MAIL_QUEUE_SIZE":  "128",
		"SHUTDOWN_TIMEOUT": "30s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":7070" || cfg.DatabaseURI != "postgres://db/lodgemart" {
		t.Errorf("unexpected addresses %q %q", cfg.RunAddress, cfg.DatabaseURI)
	}
	if cfg.JWTSecret != "env-secret" || cfg.RedisAddress != "redis:6379" {
		t.Errorf("unexpected secrets %q %q", cfg.JWTSecret, cfg.RedisAddress)
	}
	if cfg.CacheTTL != 90*time.Second || cfg.OTPTTL != 5*time.Minute || cfg.VerificationTTL != 48*time.Hour {
		t.Errorf("unexpected ttls %v %v %v", cfg.CacheTTL, cfg.OTPTTL, cfg.VerificationTTL)
	}
	if cfg.SMTPHost != "smtp.example.com" || cfg.SMTPPort != 2525 || cfg.SMTPUsername != "mailer" || cfg.SMTPPassword != "hunter2" {
		t.Errorf("unexpected smtp settings %+v", cfg)
	}
	if cfg.EmailFrom != "noreply@example.com" || cfg.AdminEmail != "ops@example.com" {
		t.Errorf("unexpected mail addresses %q %q", cfg.EmailFrom, cfg.AdminEmail)
	}
	if cfg.MailWorkers != 4 || cfg.MailQueueSize != 128 || cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("unexpected worker settings %+v", cfg)
	}
}

func TestLoadFlagOverridesBeatEnv(t *testing.T) {
	args := []string{
		"-a", ":6060",
		"-d", "postgres://flag/lodgemart",
		"-jwt-secret", "flag-secret",
		"-redis", "cache:6379",
		"-cache-ttl", "45s",
		"-smtp-host", "relay.example.com",
		"-smtp-port", "465",
		"-email-from", "store@example.com",
		"-admin-email", "admin@example.com",
		"-frontend-url", "https://front.example.com",
		"-otp-ttl", "3m",
		"-verification-ttl", "12h",
		"-mail-workers", "8",
		"-mail-queue", "256",
		"-shutdown-timeout", "5s",
	}
	cfg, err := load(args, lookupFrom(map[string]string{
		"RUN_ADDRESS":  ":7070",
		"DATABASE_URI": "postgres://env/lodgemart",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":6060" || cfg.DatabaseURI != "postgres://flag/lodgemart" {
		t.Errorf("flags should win over env, got %q %q", cfg.RunAddress, cfg.DatabaseURI)
	}
	if cfg.JWTSecret != "flag-secret" || cfg.RedisAddress != "cache:6379" {
		t.Errorf("unexpected secrets %q %q", cfg.JWTSecret, cfg.RedisAddress)
	}
	if cfg.CacheTTL != 45*time.Second || cfg.OTPTTL != 3*time.Minute || cfg.VerificationTTL != 12*time.Hour {
		t.Errorf("unexpected ttls %v %v %v", cfg.CacheTTL, cfg.OTPTTL, cfg.VerificationTTL)
	}
	if cfg.SMTPHost != "relay.example.com" || cfg.SMTPPort != 465 {
		t.Errorf("unexpected smtp relay %q:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if cfg.EmailFrom != "store@example.com" || cfg.AdminEmail != "admin@example.com" || cfg.FrontendURL != "https://front.example.com" {
		t.Errorf("unexpected mail settings %+v", cfg)
	}
	if cfg.MailWorkers != 8 || cfg.MailQueueSize != 256 || cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected worker settings %+v", cfg)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	env := lookupFrom(map[string]string{"DATABASE_URI": "postgres://db/lodgemart"})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad flag", []string{"-unknown"}, "parse flags"},
		{"bad cache ttl", []string{"-cache-ttl", "soon"}, "invalid cache ttl"},
		{"bad otp ttl", []string{"-otp-ttl", "later"}, "invalid otp ttl"},
		{"bad verification ttl", []string{"-verification-ttl", "never"}, "invalid verification ttl"},
		{"bad shutdown timeout", []string{"-shutdown-timeout", "now"}, "invalid shutdown timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(tt.args, env)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadNormalizesNonPositiveValues(t *testing.T) {
	cfg, err := load([]string{
		"-cache-ttl", "-1s",
		"-otp-ttl", "0s",
		"-verification-ttl", "-1h",
		"-mail-workers", "0",
		"-mail-queue", "-3",
		"-shutdown-timeout", "0s",
	}, lookupFrom(map[string]string{"DATABASE_URI": "postgres://db/lodgemart"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.CacheTTL != defaultCacheTTL || cfg.OTPTTL != defaultOTPTTL || cfg.VerificationTTL != defaultVerificationTTL {
		t.Errorf("non-positive ttls must fall back to defaults, got %v %v %v", cfg.CacheTTL, cfg.OTPTTL, cfg.VerificationTTL)
	}
	if cfg.MailWorkers != defaultMailWorkers || cfg.MailQueueSize != defaultMailQueueSize || cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("non-positive worker settings must fall back to defaults, got %d %d %v", cfg.MailWorkers, cfg.MailQueueSize, cfg.ShutdownTimeout)
	}
}

func TestLoadReadsSecretFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt-secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://db/lodgemart",
		"JWT_SECRET":      "env-secret",
		"JWT_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("expected secret from file, got %q", cfg.JWTSecret)
	}

	if _, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://db/lodgemart",
		"JWT_SECRET_FILE": filepath.Join(t.TempDir(), "missing"),
	})); err == nil || !strings.Contains(err.Error(), "read jwt secret file") {
		t.Fatalf("expected read error for missing secret file, got %v", err)
	}
}
