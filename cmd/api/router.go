package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cozyhomes-backend/internal/shared/middleware"
	"cozyhomes-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupHouseRoutes(v1, c)
		setupMediaRoutes(v1, c)
		setupLocationRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/me", middleware.Auth(c.JWTManager), c.UserHandler.GetProfile)
	}
}

// House routes all require a session: listings are private to their
// owner, including reads.
func setupHouseRoutes(v1 *gin.RouterGroup, c *container.Container) {
	house := v1.Group("/house", middleware.Auth(c.JWTManager))
	{
		house.POST("", c.HouseHandler.CreateHouse)
		house.GET("", c.HouseHandler.ListMyHouses)
		house.GET("/:id", c.HouseHandler.GetHouseDetail)
		house.PATCH("/:id", c.HouseHandler.UpdateHouse)
	}
}

func setupMediaRoutes(v1 *gin.RouterGroup, c *container.Container) {
	media := v1.Group("/uploadthing", middleware.Auth(c.JWTManager))
	{
		media.POST("/upload", c.MediaHandler.UploadImage)
		media.POST("/delete", c.MediaHandler.DeleteImage)
	}
}

// Location option lists are static reference data; no session needed.
func setupLocationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	locations := v1.Group("/locations")
	{
		locations.GET("/countries", c.LocationHandler.ListCountries)
		locations.GET("/countries/:code/states", c.LocationHandler.ListStates)
		locations.GET("/countries/:code/states/:state/cities", c.LocationHandler.ListCities)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{
			"database": "ok",
			"cache":    "ok",
		}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			checks["cache"] = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status": checks,
			"app":    c.Config.App.Name,
		})
	}
}
