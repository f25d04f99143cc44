package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "studioo/docs"
	"studioo/internal/adapter/http/handlers"
	"studioo/internal/adapter/http/middleware"
	"studioo/internal/adapter/persistence/repository"
	"studioo/internal/config"
	"studioo/internal/domain/pricing"
	"studioo/internal/domain/wizard"
	"studioo/internal/infrastructure/cache"
	"studioo/internal/infrastructure/database"
	"studioo/internal/infrastructure/notify"
	"studioo/internal/usecase"
	"studioo/internal/usecase/interfaces"
)

const (
	redisMaxWait    = time.Minute
	telegramMaxWait = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Wizard  *handlers.QuoteWizardHandler
	Catalog *handlers.CatalogHandler
	Hub     *handlers.HubHandler
}

// Run wires the service and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	h, closeFn, err := getHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	verifier := middleware.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	router := NewRouter(logger, verifier, h)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http][server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts the middlewares, swagger and the v1 routes.
func NewRouter(logger *zap.Logger, verifier *middleware.TokenVerifier, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Language())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, verifier, h.Wizard, h.Catalog)
	addHubRoutes(v1, verifier, h.Hub)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, func(), error) {
	catalog, err := config.LoadCatalog(cfg.Quote)
	if err != nil {
		return Handlers{}, nil, err
	}

	rdb, err := cache.ConnectRedis(ctx, cfg.Redis, redisMaxWait, logger)
	if err != nil {
		return Handlers{}, nil, err
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
	if err != nil {
		_ = rdb.Close()
		return Handlers{}, nil, err
	}

	sessionRepo := repository.NewSessionRedisRepository(rdb, cfg.Redis.SessionTTL)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.DynamoDB.ClientsTable)
	projectRepo := repository.NewProjectDynamoRepository(ddb, cfg.DynamoDB.ProjectsTable)
	requestRepo := repository.NewQuoteRequestDynamoRepository(ddb, cfg.DynamoDB.QuoteRequestsTable)

	var notifier interfaces.INotifier = notify.NewNoop(logger)
	if cfg.TelegramEnabled() {
		tg, err := notify.NewTelegramNotifier(ctx, cfg.Telegram.Token, cfg.Telegram.ChatID, telegramMaxWait, logger)
		if err != nil {
			logger.Warn("[notify][telegram] not configured, falling back to log only", zap.Error(err))
		} else {
			notifier = tg
		}
	}

	compiler := pricing.NewCompiler(catalog,
		pricing.WithValidityDays(cfg.Quote.ValidityDays),
		pricing.WithLogger(logger),
	)
	sequencer := wizard.NewSequencer(compiler)

	wizardUseCase := usecase.NewQuoteWizardUseCase(sessionRepo, clientRepo, requestRepo, notifier, sequencer, logger)
	catalogUseCase := usecase.NewCatalogUseCase(catalog)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, clientRepo)

	h := Handlers{
		Wizard:  handlers.NewQuoteWizardHandler(wizardUseCase),
		Catalog: handlers.NewCatalogHandler(catalogUseCase),
		Hub:     handlers.NewHubHandler(clientUseCase, projectUseCase),
	}
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("[cache][redis] close failed", zap.Error(err))
		}
	}
	return h, closeFn, nil
}
