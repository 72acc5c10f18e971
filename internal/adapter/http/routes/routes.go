package routes

import (
	"log"
	"os"
	"strconv"

	_ "contractor_crm/docs" // This will be auto-generated
	"contractor_crm/internal/adapter/http/handlers"
	repository2 "contractor_crm/internal/adapter/persistence/repository"
	"contractor_crm/internal/infrastructure/catalog"
	"contractor_crm/internal/infrastructure/database"
	"contractor_crm/internal/infrastructure/email"
	"contractor_crm/internal/infrastructure/payments"
	"contractor_crm/internal/infrastructure/procurement"
	"contractor_crm/internal/usecase"
	"contractor_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)

	emailDispatcher := email.NewSMTPDispatcher()

	var poService interfaces.IPurchaseOrderService
	poClient, err := procurement.NewPurchaseOrderClient()
	if err != nil {
		log.Printf("Procurement client not configured: %v", err)
	} else {
		poService = poClient
	}

	var catalogSource interfaces.ICatalogSource
	catalogClient, err := catalog.NewInventoryClient()
	if err != nil {
		log.Printf("Catalog client not configured: %v", err)
	} else {
		catalogSource = catalogClient
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, emailDispatcher, poService, catalogSource)
	paymentUseCase := usecase.NewPaymentUseCase(estimateRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	clientViewHandler := handlers.NewClientViewHandler(estimateUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, paymentHandler)
	addClientRoutes(v1, clientViewHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
