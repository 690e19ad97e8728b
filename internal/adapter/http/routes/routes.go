package routes

import (
	"log"
	"net/http"
	"time"

	_ "gestao_reparos/docs" // registers the swagger doc
	"gestao_reparos/internal/adapter/http/handlers"
	"gestao_reparos/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Quotes    *handlers.QuoteHandler
	Services  *handlers.ServiceHandler
	Finance   *handlers.FinanceHandler
	Dashboard *handlers.DashboardHandler
}

// NewRouter builds the gin engine with middlewares, docs and every route.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger-doc.json", swaggerDocHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, cfg)
	addQuoteRoutes(v1, h.Quotes)
	addServiceRoutes(v1, h.Services)
	addFinanceRoutes(v1, h.Finance)
	addDashboardRoutes(v1, h.Dashboard)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	origins := cfg.HTTP.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	router.Use(cors.New(corsCfg))
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
