package routes

import (
	_ "billing_gateway/docs" // This will be auto-generated
	"billing_gateway/internal/adapter/http/handlers"
	"billing_gateway/internal/adapter/http/middleware"
	"billing_gateway/internal/infrastructure/metrics"
	"billing_gateway/internal/infrastructure/payments"
	"billing_gateway/internal/infrastructure/templates"
	"billing_gateway/internal/usecase"
	"log"
	"os"
	"strconv"

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

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	paymentGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_API_KEY"))
	if err != nil {
		log.Fatalf("Stripe gateway not configured: %v", err)
	}
	templateClient := templates.NewClient(os.Getenv("MANDRILL_API_KEY"))

	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway)
	templateUseCase := usecase.NewTemplateContentUseCase(templateClient)

	chargeHandler := handlers.NewChargeHandler(paymentUseCase)
	customerHandler := handlers.NewCustomerHandler(paymentUseCase)
	cardHandler := handlers.NewCardHandler(paymentUseCase)
	tokenHandler := handlers.NewTokenHandler(paymentUseCase)
	accountHandler := handlers.NewAccountHandler(paymentUseCase)
	templateHandler := handlers.NewTemplateHandler(templateUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, chargeHandler, customerHandler, cardHandler, tokenHandler, accountHandler)
	addTemplateRoutes(v1, templateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware)
}
