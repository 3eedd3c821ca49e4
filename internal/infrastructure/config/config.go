package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cartas_marketplace/internal/domain/policy"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/default.yaml"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	JournalMemory   = "memory"
	JournalDynamoDB = "dynamodb"

	EscrowMock        = "mock"
	EscrowMercadoPago = "mercadopago"

	NotifierLog     = "log"
	NotifierWebhook = "webhook"
	NotifierKafka   = "kafka"
)

// Config is the resolved runtime configuration: defaults, then the YAML file, then env.
type Config struct {
	HTTPPort int

	StorageDriver      string
	DatabaseURL        string
	DBHost             string
	DBPort             int
	DBName             string
	DBUsername         string
	DBPassword         string
	DBSecretID         string
	DBSSLModeDisable   bool
	DBMaxConns         int
	DBLogLevel         string
	MigrateOnStart     bool
	RedisURL           string
	TrustCacheTTL      time.Duration
	WebhookJournal     string
	WebhookEventsTable string
	AWSRegion          string
	DynamoDBEndpoint   string

	EscrowProvider             string
	PaymentGatewayMock         bool
	MercadoPagoAccessToken     string
	MercadoPagoWebhookSecret   string
	MercadoPagoNotificationURL string
	MercadoPagoPaymentMethodID string

	NotifierDriver          string
	NotifierWebhookURL      string
	NotifierTimeout         time.Duration
	KafkaBrokers            []string
	KafkaNotificationsTopic string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	MinKycToPropose      int
	MinKycToAccept       int
	MinKycForEscrow      int
	RequireMfaForRelease bool

	CORSAllowedOrigins []string
}

// configFile mirrors configs/default.yaml.
type configFile struct {
	Service struct {
		HTTPPort int `yaml:"http_port"`
	} `yaml:"service"`
	Storage struct {
		Driver         string `yaml:"driver"`
		PostgresURL    string `yaml:"postgres_url"`
		MaxConns       int    `yaml:"max_conns"`
		LogLevel       string `yaml:"log_level"`
		MigrateOnStart *bool  `yaml:"migrate_on_start"`
	} `yaml:"storage"`
	Cache struct {
		RedisURL        string `yaml:"redis_url"`
		TrustTTLSeconds int    `yaml:"trust_ttl_seconds"`
	} `yaml:"cache"`
	WebhookJournal struct {
		Driver string `yaml:"driver"`
		Table  string `yaml:"table"`
	} `yaml:"webhook_journal"`
	AWS struct {
		Region           string `yaml:"region"`
		DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	} `yaml:"aws"`
	Escrow struct {
		Provider        string `yaml:"provider"`
		NotificationURL string `yaml:"notification_url"`
		PaymentMethodID string `yaml:"payment_method_id"`
	} `yaml:"escrow"`
	Notifier struct {
		Driver         string   `yaml:"driver"`
		WebhookURL     string   `yaml:"webhook_url"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		KafkaBrokers   []string `yaml:"kafka_brokers"`
		KafkaTopic     string   `yaml:"kafka_topic"`
	} `yaml:"notifier"`
	Auth struct {
		Issuer   string `yaml:"issuer"`
		Audience string `yaml:"audience"`
	} `yaml:"auth"`
	Trust struct {
		MinKycPropose     int   `yaml:"min_kyc_propose"`
		MinKycAccept      int   `yaml:"min_kyc_accept"`
		MinKycEscrow      int   `yaml:"min_kyc_escrow"`
		RequireMfaRelease *bool `yaml:"require_mfa_release"`
	} `yaml:"trust"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Load resolves configuration in priority order: defaults -> file -> env.
// A missing file is not an error.
func Load(path string) (Config, error) {
	rules := policy.DefaultRules()
	cfg := Config{
		HTTPPort:           8080,
		StorageDriver:      StorageMemory,
		DBPort:             5432,
		DBMaxConns:         20,
		DBLogLevel:         "error",
		MigrateOnStart:     true,
		TrustCacheTTL:      5 * time.Minute,
		WebhookJournal:     JournalMemory,
		WebhookEventsTable: "escrow_webhook_events",
		AWSRegion:          "us-east-1",
		EscrowProvider:     EscrowMock,
		NotifierDriver:     NotifierLog,
		NotifierTimeout:    5 * time.Second,

		KafkaNotificationsTopic: "cartas.notifications",

		JWTIssuer:   "cartas-marketplace",
		JWTAudience: "cartas-marketplace-api",

		MinKycToPropose:      rules.MinKycToPropose,
		MinKycToAccept:       rules.MinKycToAccept,
		MinKycForEscrow:      rules.MinKycForEscrow,
		RequireMfaForRelease: rules.RequireMfaForRelease,

		CORSAllowedOrigins: []string{"*"},
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		applyFile(&cfg, f)
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, f configFile) {
	if f.Service.HTTPPort > 0 {
		cfg.HTTPPort = f.Service.HTTPPort
	}
	if f.Storage.Driver != "" {
		cfg.StorageDriver = f.Storage.Driver
	}
	if f.Storage.PostgresURL != "" {
		cfg.DatabaseURL = f.Storage.PostgresURL
	}
	if f.Storage.MaxConns > 0 {
		cfg.DBMaxConns = f.Storage.MaxConns
	}
	if f.Storage.LogLevel != "" {
		cfg.DBLogLevel = f.Storage.LogLevel
	}
	if f.Storage.MigrateOnStart != nil {
		cfg.MigrateOnStart = *f.Storage.MigrateOnStart
	}
	if f.Cache.RedisURL != "" {
		cfg.RedisURL = f.Cache.RedisURL
	}
	if f.Cache.TrustTTLSeconds > 0 {
		cfg.TrustCacheTTL = time.Duration(f.Cache.TrustTTLSeconds) * time.Second
	}
	if f.WebhookJournal.Driver != "" {
		cfg.WebhookJournal = f.WebhookJournal.Driver
	}
	if f.WebhookJournal.Table != "" {
		cfg.WebhookEventsTable = f.WebhookJournal.Table
	}
	if f.AWS.Region != "" {
		cfg.AWSRegion = f.AWS.Region
	}
	if f.AWS.DynamoDBEndpoint != "" {
		cfg.DynamoDBEndpoint = f.AWS.DynamoDBEndpoint
	}
	if f.Escrow.Provider != "" {
		cfg.EscrowProvider = f.Escrow.Provider
	}
	if f.Escrow.NotificationURL != "" {
		cfg.MercadoPagoNotificationURL = f.Escrow.NotificationURL
	}
	if f.Escrow.PaymentMethodID != "" {
		cfg.MercadoPagoPaymentMethodID = f.Escrow.PaymentMethodID
	}
	if f.Notifier.Driver != "" {
		cfg.NotifierDriver = f.Notifier.Driver
	}
	if f.Notifier.WebhookURL != "" {
		cfg.NotifierWebhookURL = f.Notifier.WebhookURL
	}
	if f.Notifier.TimeoutSeconds > 0 {
		cfg.NotifierTimeout = time.Duration(f.Notifier.TimeoutSeconds) * time.Second
	}
	if len(f.Notifier.KafkaBrokers) > 0 {
		cfg.KafkaBrokers = f.Notifier.KafkaBrokers
	}
	if f.Notifier.KafkaTopic != "" {
		cfg.KafkaNotificationsTopic = f.Notifier.KafkaTopic
	}
	if f.Auth.Issuer != "" {
		cfg.JWTIssuer = f.Auth.Issuer
	}
	if f.Auth.Audience != "" {
		cfg.JWTAudience = f.Auth.Audience
	}
	if f.Trust.MinKycPropose > 0 {
		cfg.MinKycToPropose = f.Trust.MinKycPropose
	}
	if f.Trust.MinKycAccept > 0 {
		cfg.MinKycToAccept = f.Trust.MinKycAccept
	}
	if f.Trust.MinKycEscrow > 0 {
		cfg.MinKycForEscrow = f.Trust.MinKycEscrow
	}
	if f.Trust.RequireMfaRelease != nil {
		cfg.RequireMfaForRelease = *f.Trust.RequireMfaRelease
	}
	if len(f.CORS.AllowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = f.CORS.AllowedOrigins
	}
}

func applyEnv(cfg *Config) {
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(envOrDefault("STORAGE_DRIVER", cfg.StorageDriver)))
	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.DBHost = envOrDefault("DB_HOST", cfg.DBHost)
	cfg.DBPort = envInt("DB_PORT", cfg.DBPort)
	cfg.DBName = envOrDefault("DB_NAME", cfg.DBName)
	cfg.DBUsername = envOrDefault("DB_USERNAME", cfg.DBUsername)
	cfg.DBPassword = envOrDefault("DB_PASSWORD", cfg.DBPassword)
	cfg.DBSecretID = envOrDefault("DB_SECRET_ID", cfg.DBSecretID)
	cfg.DBSSLModeDisable = envBool("DB_SSL_MODE_DISABLE", cfg.DBSSLModeDisable)
	cfg.DBMaxConns = envInt("DB_MAX_CONNS", cfg.DBMaxConns)
	cfg.DBLogLevel = envOrDefault("DB_LOG_LEVEL", cfg.DBLogLevel)
	cfg.MigrateOnStart = envBool("DB_MIGRATE_ON_START", cfg.MigrateOnStart)

	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.TrustCacheTTL = time.Duration(envInt("TRUST_CACHE_TTL_SECONDS", int(cfg.TrustCacheTTL.Seconds()))) * time.Second

	cfg.WebhookJournal = strings.ToLower(strings.TrimSpace(envOrDefault("WEBHOOK_JOURNAL_DRIVER", cfg.WebhookJournal)))
	cfg.WebhookEventsTable = envOrDefault("WEBHOOK_EVENTS_TABLE", cfg.WebhookEventsTable)
	cfg.AWSRegion = envOrDefault("AWS_REGION", cfg.AWSRegion)
	cfg.DynamoDBEndpoint = envOrDefault("DYNAMODB_ENDPOINT", cfg.DynamoDBEndpoint)

	cfg.EscrowProvider = strings.ToLower(strings.TrimSpace(envOrDefault("ESCROW_PROVIDER", cfg.EscrowProvider)))
	cfg.PaymentGatewayMock = envBool("PAYMENT_GATEWAY_MOCK", envBool("MERCADOPAGO_MOCK", cfg.PaymentGatewayMock))
	cfg.MercadoPagoAccessToken = envOrDefault("MERCADOPAGO_ACCESS_TOKEN", cfg.MercadoPagoAccessToken)
	cfg.MercadoPagoWebhookSecret = envOrDefault("MERCADOPAGO_WEBHOOK_SECRET", cfg.MercadoPagoWebhookSecret)
	cfg.MercadoPagoNotificationURL = envOrDefault("MERCADOPAGO_NOTIFICATION_URL", cfg.MercadoPagoNotificationURL)
	cfg.MercadoPagoPaymentMethodID = envOrDefault("MERCADOPAGO_PAYMENT_METHOD_ID", cfg.MercadoPagoPaymentMethodID)

	cfg.NotifierDriver = strings.ToLower(strings.TrimSpace(envOrDefault("NOTIFIER_DRIVER", cfg.NotifierDriver)))
	cfg.NotifierWebhookURL = envOrDefault("NOTIFIER_WEBHOOK_URL", cfg.NotifierWebhookURL)
	cfg.NotifierTimeout = time.Duration(envInt("NOTIFIER_TIMEOUT_SECONDS", int(cfg.NotifierTimeout.Seconds()))) * time.Second
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaNotificationsTopic = envOrDefault("KAFKA_NOTIFICATIONS_TOPIC", cfg.KafkaNotificationsTopic)

	cfg.JWTSecret = envOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = envOrDefault("JWT_ISSUER", cfg.JWTIssuer)
	cfg.JWTAudience = envOrDefault("JWT_AUDIENCE", cfg.JWTAudience)

	cfg.MinKycToPropose = envInt("TRUST_MIN_KYC_PROPOSE", cfg.MinKycToPropose)
	cfg.MinKycToAccept = envInt("TRUST_MIN_KYC_ACCEPT", cfg.MinKycToAccept)
	cfg.MinKycForEscrow = envInt("TRUST_MIN_KYC_ESCROW", cfg.MinKycForEscrow)
	cfg.RequireMfaForRelease = envBool("TRUST_REQUIRE_MFA_RELEASE", cfg.RequireMfaForRelease)

	cfg.CORSAllowedOrigins = envCSV("CORS_ALLOWED_ORIGINS", cfg.CORSAllowedOrigins)
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" && c.DBHost == "" {
			return fmt.Errorf("storage driver postgres requires DB_URL or DB_HOST")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	switch c.WebhookJournal {
	case JournalMemory, JournalDynamoDB:
	default:
		return fmt.Errorf("unknown webhook journal driver %q", c.WebhookJournal)
	}
	switch c.EscrowProvider {
	case EscrowMock, EscrowMercadoPago:
	default:
		return fmt.Errorf("unknown escrow provider %q", c.EscrowProvider)
	}
	switch c.NotifierDriver {
	case NotifierLog:
	case NotifierWebhook:
		if c.NotifierWebhookURL == "" {
			return fmt.Errorf("notifier driver webhook requires NOTIFIER_WEBHOOK_URL")
		}
	case NotifierKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("notifier driver kafka requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown notifier driver %q", c.NotifierDriver)
	}
	if c.HTTPPort <= 0 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	return nil
}

// TrustRules returns the trust gate thresholds.
func (c Config) TrustRules() policy.Rules {
	return policy.Rules{
		MinKycToPropose:      c.MinKycToPropose,
		MinKycToAccept:       c.MinKycToAccept,
		MinKycForEscrow:      c.MinKycForEscrow,
		RequireMfaForRelease: c.RequireMfaForRelease,
	}
}

// ResolvedEscrowProvider is the provider to build; PAYMENT_GATEWAY_MOCK forces the mock.
func (c Config) ResolvedEscrowProvider() string {
	if c.PaymentGatewayMock {
		return EscrowMock
	}
	return c.EscrowProvider
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt falls back on empty or invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envBool(name string, fallback bool) bool {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch raw {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

// envCSV drops empty segments.
func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	if len(parts) == 0 {
		return fallback
	}
	return parts
}
