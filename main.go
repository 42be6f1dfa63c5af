package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/moto-workshop/mws-dashboard-api/config"
	"github.com/moto-workshop/mws-dashboard-api/controllers"
	"github.com/moto-workshop/mws-dashboard-api/documents"
	"github.com/moto-workshop/mws-dashboard-api/middleware"
	"github.com/moto-workshop/mws-dashboard-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting MWS dashboard API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	services.InitBackendClient(cfg)
	services.InitEmailService(cfg)
	documents.SetRenderer(documents.NewRenderer(cfg.Company))

	hub := services.NewHub()
	services.SetHub(hub)

	// The notifier polls the unpaged collections with the most recent
	// operator token; before the first login every cycle fails and the
	// slots stay pending
	client := services.GetBackendClient()
	sources := services.NotifierSources{
		Proveedores: services.AllProveedores(client, services.GetSessionToken),
		Repuestos:   services.AllRepuestos(client, services.GetSessionToken),
		Reservas:    services.AllReservas(client, services.GetSessionToken),
	}
	notifier := services.NewNotifier(sources, time.Duration(cfg.NotifyIntervalMinutes)*time.Minute, hub)
	services.SetNotifier(notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notifier.Start(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter()

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the gin engine with CORS and every route mounted
func setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		controllers.RegisterAuthRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.RequireToken())
		{
			controllers.RegisterResources(protected)
			controllers.RegisterFacturaRoutes(protected)
		}

		controllers.RegisterNotificationRoutes(v1, protected)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "MWS dashboard API is running",
	})
}
