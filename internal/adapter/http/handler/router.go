package handler

import (
	"visionland/internal/adapter/http/middleware"
	"visionland/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Store          ports.SimulationStore
	RentalSvc      ports.RentalService
	WalletSvc      ports.WalletService
	BackupSvc      ports.BackupService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (pings the document store backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes. The wallet session is optional everywhere: requests
	// without a token act as the anonymous demo tenant.
	v1 := r.Group("/api/v1", middleware.WalletSession(deps.TokenSvc, deps.Logger))

	propertyHandler := NewPropertyHandler(deps.Store)
	backupHandler := NewBackupHandler(deps.BackupSvc)
	properties := v1.Group("/properties")
	{
		properties.GET("", propertyHandler.List)
		properties.POST("", propertyHandler.Create)
		properties.GET("/active", propertyHandler.ListActive)
		properties.GET("/:id", propertyHandler.GetByID)
		properties.POST("/:id/toggle", propertyHandler.ToggleActive)
		properties.POST("/:id/backup", backupHandler.Backup)
	}

	v1.GET("/backups/:backend/:cid", backupHandler.Restore)

	rentalHandler := NewRentalHandler(deps.RentalSvc)
	v1.POST("/rentals", rentalHandler.Create)
	receipts := v1.Group("/receipts")
	{
		receipts.GET("", rentalHandler.ListReceipts)
		receipts.GET("/:id", rentalHandler.GetReceipt)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := v1.Group("/wallet")
	{
		wallet.GET("", walletHandler.Current)
		wallet.POST("/connect", walletHandler.Connect)
		wallet.POST("/disconnect", walletHandler.Disconnect)
		wallet.GET("/balance", walletHandler.Balance)
	}

	return r
}
