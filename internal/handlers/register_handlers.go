package handlers

import (
	"net/http"

	"github.com/SscSPs/bookkeeping_app/cmd/docs"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// writeLimiter may be nil, in which case mutating routes are not rate limited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, writeLimiter, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if writeLimiter != nil {
		v1.Use(writesOnly(middleware.RateLimit(writeLimiter)))
	}

	RegisterTransactionRoutes(v1, services.Transaction, posthogClient)
	RegisterPaymentRoutes(v1, services.Payment, posthogClient)
	RegisterPartyRoutes(v1, "/clients", services.Client)
	RegisterPartyRoutes(v1, "/vendors", services.Vendor)
	RegisterCompanyRoutes(v1, services.Company)
	RegisterCategoryRoutes(v1, services.Category, services.Transaction)
	RegisterTaxRateRoutes(v1, services.TaxRate)
	RegisterDocumentTypeRoutes(v1, services.DocumentType)
	RegisterReferenceRoutes(v1, services.Reference)
}

// writesOnly applies next to mutating requests and lets reads through untouched.
func writesOnly(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			next(c)
		}
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
