package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cartas_marketplace/docs" // This will be auto-generated
	"cartas_marketplace/internal/adapter/http/handlers"
	"cartas_marketplace/internal/adapter/http/middleware"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/infrastructure/config"
	"cartas_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build dependencies: %v", err)
	}
	defer deps.Close()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(router, cfg, deps); err != nil {
		deps.Close()
		log.Fatalf("Failed to register routes: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           newCORS(cfg).Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[routes][http] listening addr=%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[routes][http] shutdown signal received")
	case err := <-errCh:
		log.Printf("[routes][http] server failure err=%v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[routes][http] shutdown failed err=%v", err)
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return config.DefaultPath
}

func getRoutes(engine *gin.Engine, cfg config.Config, deps *dependencies) error {
	gate := policy.NewGate(cfg.TrustRules())

	quotaUseCase := usecase.NewQuotaUseCase(deps.uow, gate)
	proposalUseCase := usecase.NewProposalUseCase(deps.uow, gate, deps.notifier)
	transactionUseCase := usecase.NewTransactionUseCase(deps.uow, gate, deps.notifier)
	contractUseCase := usecase.NewContractUseCase(deps.uow, gate, deps.notifier)
	escrowUseCase := usecase.NewEscrowUseCase(deps.uow, deps.provider, deps.journal, gate, deps.notifier)
	kycUseCase := usecase.NewKycUseCase(deps.uow, gate, deps.trustCache, cfg.TrustCacheTTL, deps.notifier)

	auth, err := middleware.NewAuthenticator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, kycUseCase)
	if err != nil {
		return err
	}

	h := marketplaceHandlers{
		quotas:       handlers.NewQuotaHandler(quotaUseCase),
		proposals:    handlers.NewProposalHandler(proposalUseCase),
		transactions: handlers.NewTransactionHandler(transactionUseCase),
		contracts:    handlers.NewContractHandler(contractUseCase),
		escrow:       handlers.NewEscrowHandler(escrowUseCase),
		kyc:          handlers.NewKycHandler(kycUseCase),
	}

	v1 := engine.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, h, auth.RequireAuth())
	return nil
}

func newCORS(cfg config.Config) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         600,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
