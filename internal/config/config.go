package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port               int      `env:"PORT" envDefault:"8080" json:"port"`
	Environment        string   `env:"ENVIRONMENT" envDefault:"development" json:"environment"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info" json:"log_level"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*" json:"cors_allowed_origins"`

	// MongoDB configuration
	MongoURI             string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017" json:"mongo_uri"`
	MongoDatabase        string `env:"MONGODB_DATABASE" envDefault:"ecobytes" json:"mongo_database"`
	QuoteCollection      string `env:"MONGODB_QUOTE_COLLECTION" envDefault:"quotes" json:"mongo_quote_collection"`
	NewsletterCollection string `env:"MONGODB_NEWSLETTER_COLLECTION" envDefault:"newsletter_subscribers" json:"mongo_newsletter_collection"`

	// Redis configuration
	RedisURI      string `env:"REDIS_URI" envDefault:"localhost:6379" json:"redis_uri"`
	RedisPassword string `env:"REDIS_PASSWORD" json:"-"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" json:"redis_db"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10" json:"redis_pool_size"`

	// CEP lookup configuration
	CEPCacheTTL      time.Duration `env:"CEP_CACHE_TTL" envDefault:"24h" json:"cep_cache_ttl"`
	CEPLookupURL     string        `env:"CEP_LOOKUP_URL" envDefault:"https://viacep.com.br/ws" json:"cep_lookup_url"`
	CEPLookupTimeout time.Duration `env:"CEP_LOOKUP_TIMEOUT" envDefault:"5s" json:"cep_lookup_timeout"`
	CEPLookupRPS     float64       `env:"CEP_LOOKUP_RPS" envDefault:"5" json:"cep_lookup_rps"`

	// Form submission limits, per client IP
	SubmissionLimit  int           `env:"SUBMISSION_LIMIT" envDefault:"5" json:"submission_limit"`
	SubmissionWindow time.Duration `env:"SUBMISSION_WINDOW" envDefault:"1h" json:"submission_window"`

	// Messaging; an empty URL disables publishing
	RabbitMQURL   string `env:"RABBITMQ_URL" json:"-"`
	RabbitMQQueue string `env:"RABBITMQ_QUEUE" envDefault:"quote_requests" json:"rabbitmq_queue"`

	// Tracing configuration
	TracingEnabled  bool   `env:"TRACING_ENABLED" envDefault:"false" json:"tracing_enabled"`
	TracingEndpoint string `env:"TRACING_ENDPOINT" envDefault:"localhost:4317" json:"tracing_endpoint"`
	// Fraction of new traces sampled; requests with a sampled parent always are
	TracingSampleRatio float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1" json:"tracing_sample_ratio"`

	// Product catalog; empty uses the embedded catalog
	CatalogFile string `env:"CATALOG_FILE" json:"catalog_file"`

	IndexMaintenanceInterval time.Duration `env:"INDEX_MAINTENANCE_INTERVAL" envDefault:"1h" json:"index_maintenance_interval"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables, reading a .env
// file first when one exists.
func LoadConfig() error {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg, err := Parse(env.Options{})
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Parse builds a Config from the process environment, or from
// opts.Environment when set, and validates it.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT: %d", c.Port))
	}
	if c.MongoDatabase == "" {
		errs = append(errs, errors.New("MONGODB_DATABASE is required"))
	}
	if c.QuoteCollection == "" || c.NewsletterCollection == "" {
		errs = append(errs, errors.New("collection names must not be empty"))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Errorf("invalid REDIS_DB: %d", c.RedisDB))
	}
	if c.CEPCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid CEP_CACHE_TTL: %s", c.CEPCacheTTL))
	}
	if c.CEPLookupTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid CEP_LOOKUP_TIMEOUT: %s", c.CEPLookupTimeout))
	}
	if c.CEPLookupRPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid CEP_LOOKUP_RPS: %v", c.CEPLookupRPS))
	}
	if c.SubmissionLimit <= 0 {
		errs = append(errs, fmt.Errorf("invalid SUBMISSION_LIMIT: %d", c.SubmissionLimit))
	}
	if c.SubmissionWindow <= 0 {
		errs = append(errs, fmt.Errorf("invalid SUBMISSION_WINDOW: %s", c.SubmissionWindow))
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		errs = append(errs, fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %v", c.TracingSampleRatio))
	}
	if c.IndexMaintenanceInterval <= 0 {
		errs = append(errs, fmt.Errorf("invalid INDEX_MAINTENANCE_INTERVAL: %s", c.IndexMaintenanceInterval))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
