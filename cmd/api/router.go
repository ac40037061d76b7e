package main

import (
	"context"
	"net/http"
	"time"

	"gallery-backend/internal/shared/middleware"
	"gallery-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

// Multipart form được giữ trong memory tới giới hạn này, phần còn lại ra temp file
const maxMultipartMemory = 32 << 20

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = maxMultipartMemory

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupImageRoutes(router, c)
	setupFeedbackRoutes(router, c)
	setupAdminRoutes(router, c)

	return router
}

func setupImageRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/upload", c.ImageHandler.Upload)
	r.GET("/uploads", c.ImageHandler.List)
}

func setupFeedbackRoutes(r *gin.Engine, c *container.Container) {
	r.POST("/feedback", c.FeedbackHandler.Create)
	r.GET("/feedback", c.FeedbackHandler.List)
}

func setupAdminRoutes(r *gin.Engine, c *container.Container) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", c.AdminHandler.Login)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := gin.H{}
		statusCode := http.StatusOK

		// Check store
		storeStatus := "ok"
		if appCtx.Store == nil {
			storeStatus = "disconnected"
		} else if err := appCtx.Store.HealthCheck(ctx); err != nil {
			storeStatus = "error: " + err.Error()
		}
		services["store"] = storeStatus
		if storeStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
			health["status"] = "degraded"
		}

		// Redis là optional, không ảnh hưởng status code
		if appCtx.Cache != nil {
			cacheStatus := "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				cacheStatus = "error: " + err.Error()
			}
			services["cache"] = cacheStatus
		}

		health["services"] = services
		c.JSON(statusCode, health)
	}
}
