package routes

import (
	"context"
	"fmt"
	"log"

	"cartas_marketplace/internal/adapter/persistence/memory"
	"cartas_marketplace/internal/adapter/persistence/postgres"
	"cartas_marketplace/internal/adapter/persistence/repository"
	"cartas_marketplace/internal/infrastructure/cache"
	"cartas_marketplace/internal/infrastructure/config"
	"cartas_marketplace/internal/infrastructure/database"
	"cartas_marketplace/internal/infrastructure/notification"
	"cartas_marketplace/internal/infrastructure/payments"
	"cartas_marketplace/internal/usecase/interfaces"
)

// dependencies are the adapters chosen by configuration.
type dependencies struct {
	uow        interfaces.IUnitOfWork
	journal    interfaces.IWebhookEventRepository
	provider   interfaces.IEscrowProvider
	notifier   interfaces.INotifier
	trustCache interfaces.ITrustLevelCache
	closers    []func() error
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Printf("[routes][shutdown] close failed err=%v", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg config.Config) (*dependencies, error) {
	d := &dependencies{}

	uow, err := buildUnitOfWork(ctx, cfg, d)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.uow = uow

	if d.journal, err = buildJournal(ctx, cfg); err != nil {
		d.Close()
		return nil, err
	}
	if d.provider, err = buildEscrowProvider(cfg); err != nil {
		d.Close()
		return nil, err
	}
	if d.notifier, err = buildNotifier(cfg, d); err != nil {
		d.Close()
		return nil, err
	}
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		d.closers = append(d.closers, client.Close)
		d.trustCache = cache.NewRedisTrustLevelCache(client)
		log.Printf("[routes][cache] trust level cache enabled ttl=%s", cfg.TrustCacheTTL)
	}
	return d, nil
}

func buildUnitOfWork(ctx context.Context, cfg config.Config, d *dependencies) (interfaces.IUnitOfWork, error) {
	if cfg.StorageDriver != config.StoragePostgres {
		log.Printf("[routes][storage] using in-memory store")
		return memory.NewStore(), nil
	}

	settings := database.PostgresSettings{
		URL:        cfg.DatabaseURL,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Name:       cfg.DBName,
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		SecretID:   cfg.DBSecretID,
		SSLDisable: cfg.DBSSLModeDisable,
	}
	var secrets database.SecretsAPI
	if settings.NeedsSecrets() {
		client, err := database.NewSecretsClient(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("secrets manager: %w", err)
		}
		secrets = client
	}
	dsn, err := settings.DSN(ctx, secrets)
	if err != nil {
		return nil, err
	}

	db, err := postgres.Connect(ctx, dsn, cfg.DBMaxConns, cfg.DBLogLevel)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		d.closers = append(d.closers, sqlDB.Close)
	}
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}
	log.Printf("[routes][storage] using postgres host=%s db=%s", cfg.DBHost, cfg.DBName)
	return postgres.NewUnitOfWork(db), nil
}

func buildJournal(ctx context.Context, cfg config.Config) (interfaces.IWebhookEventRepository, error) {
	if cfg.WebhookJournal != config.JournalDynamoDB {
		return memory.NewWebhookJournal(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
		Region:   cfg.AWSRegion,
		Endpoint: cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	log.Printf("[routes][journal] using dynamodb table=%s", cfg.WebhookEventsTable)
	return repository.NewWebhookEventDynamoRepository(ddb, cfg.WebhookEventsTable), nil
}

func buildEscrowProvider(cfg config.Config) (interfaces.IEscrowProvider, error) {
	if cfg.ResolvedEscrowProvider() != config.EscrowMercadoPago {
		log.Printf("[routes][escrow] using mock provider")
		return payments.NewMockEscrowProvider(), nil
	}
	provider, err := payments.NewMercadoPagoEscrowProvider(payments.MercadoPagoOptions{
		AccessToken:     cfg.MercadoPagoAccessToken,
		WebhookSecret:   cfg.MercadoPagoWebhookSecret,
		NotificationURL: cfg.MercadoPagoNotificationURL,
		PaymentMethodID: cfg.MercadoPagoPaymentMethodID,
	})
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func buildNotifier(cfg config.Config, d *dependencies) (interfaces.INotifier, error) {
	switch cfg.NotifierDriver {
	case config.NotifierWebhook:
		return notification.NewWebhookNotifier(cfg.NotifierWebhookURL, cfg.NotifierTimeout), nil
	case config.NotifierKafka:
		n, err := notification.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, n.Close)
		return n, nil
	default:
		return notification.NewLogNotifier(), nil
	}
}
