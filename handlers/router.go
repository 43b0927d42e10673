package handlers

import (
	"classical-cipher-backend/config"
	"classical-cipher-backend/crypto"
	"classical-cipher-backend/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires the cipher endpoints, health, listing and metrics routes.
func NewRouter(cfg *config.Config, baseLogger *zerolog.Logger, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(baseLogger, m))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	router.Use(cors.New(corsConfig))

	cipherHandler := NewCipherHandler(baseLogger, m)

	// API Routes
	api := router.Group("/api")
	{
		api.GET("/health", cipherHandler.HealthCheck)
		api.GET("/ciphers", cipherHandler.ListCiphers)

		for _, ci := range crypto.All() {
			group := api.Group("/" + ci.Name())
			group.POST("/encrypt", cipherHandler.Encrypt(ci))
			group.POST("/decrypt", cipherHandler.Decrypt(ci))
		}
	}

	router.GET("/metrics", gin.WrapH(m.Handler()))

	return router
}
