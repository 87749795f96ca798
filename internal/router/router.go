package router

import (
	"github.com/gin-gonic/gin"

	"sortsense/internal/handler"
	"sortsense/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	uploadH *handler.UploadHandler,
	kpiH *handler.KpiHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Upload flow
	r.POST("/upload-image", uploadH.UploadImage)
	r.POST("/upload-invoice", uploadH.UploadInvoice)

	// KPI view
	r.GET("/kpis", kpiH.GetKpis)
	r.POST("/reset-kpis", kpiH.ResetKpis)
	r.GET("/export/kpis.xlsx", kpiH.ExportKpis)

	return r
}
