package routes

import (
	"context"
	"fmt"

	_ "maintenance_contracts/docs"
	"maintenance_contracts/internal/adapter/http/handlers"
	"maintenance_contracts/internal/adapter/persistence/repository"
	"maintenance_contracts/internal/infrastructure/cache"
	"maintenance_contracts/internal/infrastructure/config"
	"maintenance_contracts/internal/infrastructure/database"
	"maintenance_contracts/internal/infrastructure/logger"
	"maintenance_contracts/internal/infrastructure/payments"
	"maintenance_contracts/internal/usecase"
	"maintenance_contracts/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the application and blocks serving HTTP on cfg.Port.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(ctx, router, cfg, log); err != nil {
		return err
	}

	log.Info("starting http server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func getRoutes(ctx context.Context, router *gin.Engine, cfg config.Config, log *logger.Logger) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	contractRepo := repository.NewContractDynamoRepository(ddb, cfg.ContractsTable)
	itemRepo := repository.NewItemDynamoRepository(ddb, cfg.ItemsTable)

	// A typed nil would defeat the nil checks in the use cases.
	var itemCache interfaces.IItemCache
	if client := cache.NewRedisClient(cfg); client != nil {
		itemCache = cache.NewRedisItemCache(client, cfg.ItemCacheTTL)
		log.Info("item cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ItemCacheTTL)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", "error", err)
	} else {
		paymentGateway = mpGateway
	}

	serviceItemUseCase := usecase.NewServiceItemUseCase(itemRepo, itemCache, log)
	contractUseCase := usecase.NewContractUseCase(contractRepo, serviceItemUseCase, log)
	billingUseCase := usecase.NewBillingUseCase(contractRepo, paymentGateway, log)
	reportUseCase := usecase.NewReportUseCase(contractRepo, log)

	contractHandler := handlers.NewContractHandler(contractUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase, cfg.PaymentGatewayMock, log)
	serviceItemHandler := handlers.NewServiceItemHandler(serviceItemUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContractRoutes(v1, contractHandler, billingHandler)
	addCatalogRoutes(v1, serviceItemHandler)
	addReportRoutes(v1, reportHandler)
	return nil
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(500)
	}))
}
