package routes

import (
	"log"
	"os"
	"strings"

	_ "servicehub/docs" // generated swagger spec
	"servicehub/internal/adapter/http/handlers"
	"servicehub/internal/adapter/persistence/memory"
	"servicehub/internal/adapter/persistence/repository"
	"servicehub/internal/infrastructure/database"
	"servicehub/internal/infrastructure/notifications"
	"servicehub/internal/infrastructure/payments"
	"servicehub/internal/usecase"
	"servicehub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = "8080"

// Run wires the stores, engines and handlers, then starts the server.
func Run() {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	bookingRepo, txRepo, packageRepo := buildStores()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	notifier := notifications.NewLogDispatcher(logger)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	lifecycle := usecase.NewBookingLifecycleUseCase(bookingRepo, txRepo, packageRepo, notifier)
	reconciliation := usecase.NewPaymentReconciliationUseCase(txRepo, bookingRepo, gateway, notifier)
	catalog := usecase.NewPackageCatalogUseCase(packageRepo)

	bookingHandler := handlers.NewBookingHandler(lifecycle)
	paymentHandler := handlers.NewPaymentHandler(reconciliation)
	packageHandler := handlers.NewPackageHandler(catalog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler, paymentHandler, packageHandler)
}

// buildStores picks the persistence driver. DynamoDB is the default;
// STORAGE_DRIVER=memory runs everything in-process for local development.
func buildStores() (interfaces.IBookingRepository, interfaces.IPaymentTransactionRepository, interfaces.IPackageRepository) {
	if strings.EqualFold(os.Getenv("STORAGE_DRIVER"), "memory") {
		log.Printf("[routes] using in-memory storage driver")
		store := memory.NewStore()
		return store.Bookings(), store.Transactions(), store.Packages()
	}

	ddb := database.ConnectDynamoDB()
	return repository.NewBookingDynamoRepository(ddb),
		repository.NewPaymentTransactionDynamoRepository(ddb),
		repository.NewPackageDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
