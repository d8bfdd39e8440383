package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidValue             = errors.New("invalid environment variable value")
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Agent    AgentConfig
	Twilio   TwilioConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Services ServicesConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// BaseURL is the public https origin Twilio uses to reach the webhooks.
	// Empty when an ngrok tunnel supplies it at startup.
	BaseURL string
	// NgrokAuthToken opens an ngrok tunnel when BaseURL is not set.
	NgrokAuthToken string
}

// AgentConfig selects and configures the dialogue policy backend
type AgentConfig struct {
	Kind           string
	Model          string
	OpenAIAPIKey   string
	GoogleAIAPIKey string
}

// TwilioConfig holds telephony credentials and the sender number
type TwilioConfig struct {
	AccountSID        string
	AuthToken         string
	Number            string
	ValidateSignature bool
}

// RedisConfig holds call session store settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// DatabaseConfig holds database connection settings. Persistence is optional.
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       string
	IntakeTopic   string
	ConsumerGroup string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
	// RateLimitRPM caps read API requests per token subject per minute.
	RateLimitRPM int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.NgrokAuthToken = os.Getenv("NGROK_AUTH_TOKEN")
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		cfg.Server.BaseURL = NormalizeBaseURL(baseURL)
	} else if cfg.Server.NgrokAuthToken == "" {
		return nil, fmt.Errorf("BASE_URL is not set and no NGROK_AUTH_TOKEN to open a tunnel: %w", ErrEmptyEnvironmentVariable)
	}

	// Agent configuration
	cfg.Agent.Kind = getEnvWithDefault("AGENT_KIND", "chatgpt")
	cfg.Agent.Model = os.Getenv("AGENT_MODEL")
	cfg.Agent.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Agent.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	switch strings.ToLower(strings.TrimSpace(cfg.Agent.Kind)) {
	case "gemini":
		if cfg.Agent.GoogleAIAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_AI_API_KEY is not set: %w", ErrEmptyEnvironmentVariable)
		}
	default:
		if cfg.Agent.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set: %w", ErrEmptyEnvironmentVariable)
		}
	}

	// Twilio configuration
	if cfg.Twilio.AccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Twilio.AuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Twilio.Number, err = requireEnv("TWILIO_NUMBER"); err != nil {
		return nil, err
	}
	cfg.Twilio.ValidateSignature, err = strconv.ParseBool(getEnvWithDefault("TWILIO_VALIDATE_SIGNATURE", "true"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TWILIO_VALIDATE_SIGNATURE: %w", err)
	}

	// Redis configuration
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Enabled = cfg.Redis.Host != ""
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Database configuration
	cfg.Database.Host = os.Getenv("DB_HOST")
	cfg.Database.Username = os.Getenv("DB_USERNAME")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.Name = os.Getenv("DB_NAME")

	// Kafka configuration
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.IntakeTopic = getEnvWithDefault("KAFKA_INTAKE_TOPIC", "intake.completed")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "intake-workers")

	// Services configuration
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")

	// Auth configuration
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Auth.RateLimitRPM, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_RPM", "60"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}
	if cfg.Auth.RateLimitRPM <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPM must be positive, got %d: %w", cfg.Auth.RateLimitRPM, ErrInvalidValue)
	}

	return cfg, nil
}

// Enabled reports whether every database setting is present.
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Name != ""
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Enabled reports whether Kafka brokers are configured.
func (c *KafkaConfig) Enabled() bool {
	return c.Brokers != ""
}

// BrokerList splits the comma separated broker string.
func (c *KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NormalizeBaseURL forces an https scheme and strips any trailing slash, so
// a bare host such as "abc.example.com" becomes "https://abc.example.com".
func NormalizeBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	base = strings.TrimPrefix(base, "https://")
	base = strings.TrimPrefix(base, "http://")
	return "https://" + strings.TrimRight(base, "/")
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
