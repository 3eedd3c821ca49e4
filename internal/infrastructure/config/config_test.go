package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var configEnvKeys = []string{
	"HTTP_PORT", "STORAGE_DRIVER", "DB_URL", "POSTGRES_URL", "DB_HOST", "DB_PORT", "DB_NAME",
	"DB_USERNAME", "DB_PASSWORD", "DB_SECRET_ID", "DB_SSL_MODE_DISABLE", "DB_MAX_CONNS",
	"DB_LOG_LEVEL", "DB_MIGRATE_ON_START", "REDIS_URL", "TRUST_CACHE_TTL_SECONDS",
	"WEBHOOK_JOURNAL_DRIVER", "WEBHOOK_EVENTS_TABLE", "AWS_REGION", "DYNAMODB_ENDPOINT",
	"ESCROW_PROVIDER", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "MERCADOPAGO_ACCESS_TOKEN",
	"MERCADOPAGO_WEBHOOK_SECRET", "MERCADOPAGO_NOTIFICATION_URL", "MERCADOPAGO_PAYMENT_METHOD_ID",
	"NOTIFIER_DRIVER", "NOTIFIER_WEBHOOK_URL", "NOTIFIER_TIMEOUT_SECONDS", "KAFKA_BROKERS",
	"KAFKA_NOTIFICATIONS_TOPIC", "JWT_SECRET", "JWT_ISSUER", "JWT_AUDIENCE",
	"TRUST_MIN_KYC_PROPOSE", "TRUST_MIN_KYC_ACCEPT", "TRUST_MIN_KYC_ESCROW",
	"TRUST_REQUIRE_MFA_RELEASE", "CORS_ALLOWED_ORIGINS",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults when file is missing", func(t *testing.T) {
		clearConfigEnv(t)
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTPPort != 8080 || cfg.StorageDriver != StorageMemory || cfg.EscrowProvider != EscrowMock || cfg.NotifierDriver != NotifierLog {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		rules := cfg.TrustRules()
		if rules.MinKycToPropose != 1 || rules.MinKycToAccept != 1 || rules.MinKycForEscrow != 1 || rules.RequireMfaForRelease {
			t.Fatalf("unexpected trust rules: %+v", rules)
		}
	})

	t.Run("file then env", func(t *testing.T) {
		clearConfigEnv(t)
		path := writeConfigFile(t, `
service:
  http_port: 9000
storage:
  driver: postgres
  postgres_url: postgres://file
cache:
  trust_ttl_seconds: 60
trust:
  min_kyc_accept: 2
  require_mfa_release: true
cors:
  allowed_origins: ["https://app.example"]
`)
		t.Setenv("DB_URL", "postgres://env")
		t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
		t.Setenv("NOTIFIER_DRIVER", "KAFKA")
		t.Setenv("TRUST_MIN_KYC_ESCROW", "3")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTPPort != 9000 {
			t.Fatalf("expected file port, got %d", cfg.HTTPPort)
		}
		if cfg.DatabaseURL != "postgres://env" {
			t.Fatalf("expected env db url, got %s", cfg.DatabaseURL)
		}
		if cfg.TrustCacheTTL != time.Minute {
			t.Fatalf("unexpected ttl: %s", cfg.TrustCacheTTL)
		}
		if !reflect.DeepEqual(cfg.KafkaBrokers, []string{"k1:9092", "k2:9092"}) || cfg.NotifierDriver != NotifierKafka {
			t.Fatalf("unexpected kafka config: %v %s", cfg.KafkaBrokers, cfg.NotifierDriver)
		}
		rules := cfg.TrustRules()
		if rules.MinKycToAccept != 2 || rules.MinKycForEscrow != 3 || !rules.RequireMfaForRelease {
			t.Fatalf("unexpected trust rules: %+v", rules)
		}
		if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"https://app.example"}) {
			t.Fatalf("unexpected cors: %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("invalid env numbers fall back", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("HTTP_PORT", "abc")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil || cfg.HTTPPort != 8080 {
			t.Fatalf("expected fallback port, got %d err=%v", cfg.HTTPPort, err)
		}
	})

	t.Run("mock flag forces mock provider", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("ESCROW_PROVIDER", "mercadopago")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ResolvedEscrowProvider() != EscrowMock {
			t.Fatalf("expected mock provider, got %s", cfg.ResolvedEscrowProvider())
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := map[string][2]string{
			"unknown storage":           {"STORAGE_DRIVER", "mongo"},
			"postgres without dsn":      {"STORAGE_DRIVER", "postgres"},
			"unknown journal":           {"WEBHOOK_JOURNAL_DRIVER", "s3"},
			"unknown provider":          {"ESCROW_PROVIDER", "stripe"},
			"webhook notifier no url":   {"NOTIFIER_DRIVER", "webhook"},
			"kafka notifier no brokers": {"NOTIFIER_DRIVER", "kafka"},
		}
		for name, kv := range cases {
			t.Run(name, func(t *testing.T) {
				clearConfigEnv(t)
				t.Setenv(kv[0], kv[1])
				if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
					t.Fatalf("expected error")
				}
			})
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		clearConfigEnv(t)
		path := writeConfigFile(t, "service: [")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
