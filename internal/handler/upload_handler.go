package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sortsense/internal/service"
)

// UploadHandler handles image and invoice upload endpoints.
type UploadHandler struct {
	uploadService  service.UploadService
	invoiceService service.InvoiceService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService, invoiceService service.InvoiceService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, invoiceService: invoiceService}
}

// UploadImage handles POST /upload-image: classify a waste photo and
// record one event per recognized item.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.uploadService.UploadImage(c.Request.Context(), service.UploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// UploadInvoice handles POST /upload-invoice: extract hauler invoice lines
// from a PDF and record them.
func (h *UploadHandler) UploadInvoice(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.invoiceService.UploadInvoice(c.Request.Context(), service.UploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
