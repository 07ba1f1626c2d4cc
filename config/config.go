package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Defaults reproduce the FormSubmit.co relay the site launched with.
	DefaultRelayEndpoint = "https://formsubmit.co/ajax/info@ajc-jazira.com"
	DefaultRelayCC       = "intekhab@ajc-jazira.com,kalim@ajc-jazira.com"
	DefaultRelayTemplate = "table"
	DefaultInquiryInbox  = "info@ajc-jazira.com"
)

// Relay drivers
const (
	RelayDriverFormSubmit = "formsubmit"
	RelayDriverResend     = "resend"
	RelayDriverLog        = "log"
)

type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	LogFile        string // When set, logs are also written to a rotating file
	// Contact relay
	RelayDriver   string
	RelayEndpoint string
	RelayCC       []string
	RelayTemplate string
	RelayTimeout  time.Duration // Zero means no client-side timeout
	InquiryInbox  string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, inquiries are logged to console instead of relayed
	// Visitors
	VisitorTTL time.Duration
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 (static asset CDN)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        environment,
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "*")),
		LogFile:            os.Getenv("LOG_FILE"),
		RelayDriver:        strings.ToLower(getEnv("RELAY_DRIVER", RelayDriverFormSubmit)),
		RelayEndpoint:      getEnv("RELAY_ENDPOINT", DefaultRelayEndpoint),
		RelayCC:            splitList(getEnv("RELAY_CC", DefaultRelayCC)),
		RelayTemplate:      getEnv("RELAY_TEMPLATE", DefaultRelayTemplate),
		RelayTimeout:       getEnvDuration("RELAY_TIMEOUT", 0),
		InquiryInbox:       getEnv("INQUIRY_INBOX", DefaultInquiryInbox),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@ajc-jazira.com"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Al Jazira Website"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", environment != "production"),
		VisitorTTL:         getEnvDuration("VISITOR_TTL", 2*time.Hour),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        strings.TrimRight(getEnv("R2_PUBLIC_URL", ""), "/"),
	}
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// R2Configured reports whether every credential needed to reach the bucket is present
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// splitList splits a comma-separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
