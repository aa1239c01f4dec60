package main

import (
	"github.com/ecobytes/site-api/internal/handlers"
	"github.com/ecobytes/site-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// routes holds the stateful handlers mounted by newRouter.
type routes struct {
	health     *handlers.HealthHandlers
	cep        *handlers.CEPHandlers
	catalog    *handlers.CatalogHandlers
	quotes     *handlers.QuoteHandlers
	newsletter *handlers.NewsletterHandlers
}

func newRouter(r routes, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		middleware.CORS(corsOrigins),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/health", r.health.HealthCheck)

		v1.POST("/validate/document", handlers.ValidateDocument)
		v1.POST("/validate/email", handlers.ValidateEmailAddress)
		v1.POST("/validate/phone", handlers.ValidatePhoneNumber)

		v1.POST("/format/document", handlers.FormatDocument)
		v1.POST("/format/phone", handlers.FormatPhone)
		v1.POST("/format/cep", handlers.FormatCEP)

		v1.GET("/cep/:cep", r.cep.GetAddress)

		v1.GET("/catalog/products", r.catalog.ListProducts)
		v1.GET("/catalog/unit", r.catalog.GetUnit)

		v1.POST("/quotes", r.quotes.CreateQuote)

		v1.POST("/newsletter", r.newsletter.Subscribe)
		v1.GET("/newsletter/count", r.newsletter.CountSubscribers)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
