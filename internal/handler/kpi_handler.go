package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sortsense/internal/export"
	"sortsense/internal/service"
)

// KpiHandler handles KPI read, reset, and export endpoints.
type KpiHandler struct {
	kpiService service.KpiService
}

// NewKpiHandler creates a new KpiHandler.
func NewKpiHandler(kpiService service.KpiService) *KpiHandler {
	return &KpiHandler{kpiService: kpiService}
}

// GetKpis handles GET /kpis.
func (h *KpiHandler) GetKpis(c *gin.Context) {
	kpis, err := h.kpiService.GetKpis(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, kpis)
}

// ResetKpis handles POST /reset-kpis. Only the local in-memory store
// supports reset; warehouse mode answers 403.
func (h *KpiHandler) ResetKpis(c *gin.Context) {
	kpis, err := h.kpiService.Reset(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, kpis)
}

// ExportKpis handles GET /export/kpis.xlsx.
func (h *KpiHandler) ExportKpis(c *gin.Context) {
	kpis, err := h.kpiService.GetKpis(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="kpis.xlsx"`)
	c.Status(http.StatusOK)

	if err := export.WriteKpiWorkbook(c.Writer, *kpis); err != nil {
		// Headers are already sent; all we can do is log.
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] kpi export failed: %v", requestID, err)
	}
}
