package routes

import (
	"context"
	_ "crm_imobiliario/docs" // This will be auto-generated
	"crm_imobiliario/internal/adapter/http/handlers"
	"crm_imobiliario/internal/adapter/http/middleware"
	repository2 "crm_imobiliario/internal/adapter/persistence/repository"
	"crm_imobiliario/internal/auth"
	"crm_imobiliario/internal/infrastructure/config"
	"crm_imobiliario/internal/infrastructure/database"
	"crm_imobiliario/internal/infrastructure/storage"
	"crm_imobiliario/internal/usecase"
	"crm_imobiliario/internal/usecase/interfaces"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run(cfg *config.Config, logger *zap.Logger) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	setMiddlewares(cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cleanup, err := getRoutes(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to wire the application", zap.Error(err))
	}
	defer cleanup()

	logger.Info("Starting server", zap.Int("port", cfg.Port), zap.String("lead_store", cfg.LeadStoreProvider))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Error("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, cfg *config.Config, logger *zap.Logger) (func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}

	leadRepo, cleanup, err := newLeadRepository(ctx, cfg, ddb, logger)
	if err != nil {
		return nil, err
	}

	templateRepo := repository2.NewContractTemplateDynamoRepository(ddb, cfg.AWS.ContractTemplatesTable)
	documents, err := storage.NewS3DocumentStorage(ctx, cfg.AWS, cfg.Storage, logger)
	if err != nil {
		cleanup()
		return nil, err
	}

	leadSessions := usecase.NewLeadSessions(leadRepo, auth.ContextIdentity{}, logger)
	templateUseCase := usecase.NewContractTemplateUseCase(templateRepo, documents, cfg.Storage.MaxUploadBytes, logger)

	leadHandler := handlers.NewLeadHandler(leadSessions)
	contractHandler := handlers.NewContractTemplateHandler(templateUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.Auth([]byte(cfg.JWTSecret)))
	addLeadRoutes(private, leadHandler)
	addContractRoutes(private, contractHandler)

	return cleanup, nil
}

// newLeadRepository picks the remote leads table and, when Redis is
// configured, puts the list cache in front of it.
func newLeadRepository(ctx context.Context, cfg *config.Config, ddb repository2.DynamoDBAPI, logger *zap.Logger) (interfaces.ILeadRepository, func(), error) {
	var (
		repo    interfaces.ILeadRepository
		closers []func()
	)

	switch cfg.LeadStoreProvider {
	case config.ProviderPostgres:
		db, err := database.ConnectPostgres(cfg.Postgres.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db.DB); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		closers = append(closers, func() { _ = db.Close() })
		repo = repository2.NewLeadPostgresRepository(db)
	default:
		repo = repository2.NewLeadDynamoRepository(ddb, cfg.AWS.LeadsTable)
	}

	if cfg.Redis.Addr != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			// The cache is optional: run without it rather than refuse to start.
			logger.Warn("Lead cache disabled", zap.Error(err))
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			repo = repository2.NewLeadCacheRepository(repo, rdb, cfg.Redis.LeadTTL, logger)
		}
	}

	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	return repo, cleanup, nil
}

func setMiddlewares(cfg *config.Config, logger *zap.Logger) {
	router.MaxMultipartMemory = cfg.Storage.MaxUploadBytes
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.AllowedOrigins()))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
