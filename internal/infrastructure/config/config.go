package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderDynamoDB = "dynamodb"
	ProviderPostgres = "postgres"
)

type Config struct {
	Port      int    `mapstructure:"PORT"`
	AppEnv    string `mapstructure:"APP_ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	LeadStoreProvider string `mapstructure:"LEAD_STORE_PROVIDER"`

	AWS      AWSConfig      `mapstructure:",squash"`
	Postgres PostgresConfig `mapstructure:",squash"`
	Redis    RedisConfig    `mapstructure:",squash"`
	Storage  StorageConfig  `mapstructure:",squash"`

	JWTSecret          string `mapstructure:"JWT_SECRET"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

type AWSConfig struct {
	Region                 string `mapstructure:"AWS_REGION"`
	AccessKeyID            string `mapstructure:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey        string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint       string `mapstructure:"DYNAMODB_ENDPOINT"`
	LeadsTable             string `mapstructure:"LEADS_TABLE"`
	ContractTemplatesTable string `mapstructure:"CONTRACT_TEMPLATES_TABLE"`
}

type PostgresConfig struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
}

// RedisConfig enables the lead list cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	LeadTTL  time.Duration `mapstructure:"LEAD_CACHE_TTL"`
}

type StorageConfig struct {
	Bucket         string `mapstructure:"S3_BUCKET"`
	Endpoint       string `mapstructure:"S3_ENDPOINT"`
	MaxUploadBytes int64  `mapstructure:"CONTRACT_MAX_UPLOAD_BYTES"`
}

var defaults = map[string]any{
	"PORT":                      8080,
	"APP_ENV":                   "development",
	"LOG_LEVEL":                 "info",
	"LOG_FORMAT":                "json",
	"LEAD_STORE_PROVIDER":       ProviderDynamoDB,
	"AWS_REGION":                "us-east-1",
	"AWS_ACCESS_KEY_ID":         "local",
	"AWS_SECRET_ACCESS_KEY":     "local",
	"DYNAMODB_ENDPOINT":         "",
	"LEADS_TABLE":               "leads",
	"CONTRACT_TEMPLATES_TABLE":  "contract_templates",
	"DATABASE_URL":              "",
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"REDIS_DB":                  0,
	"LEAD_CACHE_TTL":            "30s",
	"JWT_SECRET":                "",
	"CORS_ALLOWED_ORIGINS":      "*",
	"S3_BUCKET":                 "contract-templates",
	"S3_ENDPOINT":               "",
	"CONTRACT_MAX_UPLOAD_BYTES": 20 << 20,
}

// Load reads the configuration from the environment. A .env file, when
// present, is loaded before this runs (see cmd/api).
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LeadStoreProvider = strings.ToLower(strings.TrimSpace(cfg.LeadStoreProvider))

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	switch cfg.LeadStoreProvider {
	case ProviderDynamoDB:
	case ProviderPostgres:
		if cfg.Postgres.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when LEAD_STORE_PROVIDER=%s", ProviderPostgres)
		}
	default:
		return fmt.Errorf("unknown LEAD_STORE_PROVIDER %q", cfg.LeadStoreProvider)
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Redis.LeadTTL < 0 {
		return fmt.Errorf("LEAD_CACHE_TTL must not be negative")
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
