package routes

import (
	_ "apnaghar/docs" // This will be auto-generated
	"apnaghar/internal/adapter/http/handlers"
	repository2 "apnaghar/internal/adapter/persistence/repository"
	"apnaghar/internal/events"
	"apnaghar/internal/infrastructure/blockchain"
	"apnaghar/internal/infrastructure/database"
	"apnaghar/internal/infrastructure/notify"
	"apnaghar/internal/infrastructure/payments"
	"apnaghar/internal/infrastructure/storage"
	"apnaghar/internal/usecase"
	"apnaghar/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	principalRepo := repository2.NewPrincipalDynamoRepository(ddb)
	developerRepo := repository2.NewDeveloperDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	propertyRepo := repository2.NewPropertyDynamoRepository(ddb)
	milestoneRepo := repository2.NewMilestoneDynamoRepository(ddb)
	updateRepo := repository2.NewUpdateDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	refundRepo := repository2.NewRefundDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	var gateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
		os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
	)
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		gateway = rzpGateway
	}

	var objectStorage interfaces.IObjectStorage
	cldStore, err := storage.NewCloudinaryStore(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("Cloudinary storage not configured: %v", err)
	} else {
		objectStorage = cldStore
	}

	anchorClient := blockchain.NewMiddlewareClient(os.Getenv("BLOCKCHAIN_MIDDLEWARE_URL"))

	bus := events.NewBus()

	authUseCase := usecase.NewAuthUseCase(principalRepo, developerRepo, projectRepo)
	catalogUseCase := usecase.NewCatalogUseCase(projectRepo, propertyRepo, milestoneRepo, developerRepo, updateRepo, authUseCase)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, propertyRepo, paymentRepo, catalogUseCase, bus)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, refundRepo, bookingRepo, gateway, bus)
	evidenceUseCase := usecase.NewEvidenceUseCase(milestoneRepo, propertyRepo, projectRepo, updateRepo, objectStorage, anchorClient, authUseCase, bus)
	notifier := usecase.NewNotifier(notificationRepo, notificationRepo, notify.NewLogChannel())
	counterSink := events.NewCounterSink()

	bus.Subscribe(events.NamePaymentCompleted, bookingUseCase.HandlePaymentCompleted)
	bus.Subscribe(events.NameBookingStateChanged, paymentUseCase.HandleBookingStateChanged)
	bus.Subscribe(events.NameEvidenceAttached, evidenceUseCase.HandleEvidenceAttached)
	bus.SubscribeAll(notifier.Handle)
	bus.SubscribeAll(counterSink.Handle)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(paymentUseCase)
	evidenceHandler := handlers.NewEvidenceHandler(evidenceUseCase)
	notificationHandler := handlers.NewNotificationHandler(notifier)

	router.Use(handlers.AuthMiddleware(authUseCase))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, catalogHandler, bookingHandler, paymentHandler, webhookHandler, evidenceHandler, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
