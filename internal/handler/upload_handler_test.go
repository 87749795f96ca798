package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sortsense/internal/domain"
	"sortsense/internal/handler"
	"sortsense/internal/service"
	"sortsense/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newUploadHandler() (*handler.UploadHandler, *mocks.MockUploadService, *mocks.MockInvoiceService) {
	uploadSvc := new(mocks.MockUploadService)
	invoiceSvc := new(mocks.MockInvoiceService)
	h := handler.NewUploadHandler(uploadSvc, invoiceSvc)
	return h, uploadSvc, invoiceSvc
}

func TestUploadImage_Success(t *testing.T) {
	h, uploadSvc, _ := newUploadHandler()

	uploadSvc.On("UploadImage", mock.Anything, mock.AnythingOfType("service.UploadInput")).
		Return(&service.ImageUploadResult{
			Items: []domain.ClassifiedItem{
				{Label: "plastic_bottle", Route: domain.RouteRecycle, Confidence: 0.92, EstWeightKg: 0.03},
			},
			S3Key: "waste/1_bin.png",
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload-image", "bin.png", []byte("fake-image"))

	h.UploadImage(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	uploadSvc.AssertExpectations(t)
}

func TestUploadImage_MissingFile(t *testing.T) {
	h, uploadSvc, _ := newUploadHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/upload-image", http.NoBody)

	h.UploadImage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uploadSvc.AssertNotCalled(t, "UploadImage")
}

func TestUploadImage_EmptyFileMapsToBadRequest(t *testing.T) {
	h, uploadSvc, _ := newUploadHandler()

	uploadSvc.On("UploadImage", mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyFile)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload-image", "empty.png", []byte{})

	h.UploadImage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "EMPTY_FILE", resp.Error.Code)
}

func TestUploadImage_ClassifierFailureMapsToBadGateway(t *testing.T) {
	h, uploadSvc, _ := newUploadHandler()

	uploadSvc.On("UploadImage", mock.Anything, mock.Anything).
		Return(nil, domain.ErrClassificationFailed)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload-image", "bin.png", []byte("fake-image"))

	h.UploadImage(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestUploadInvoice_Success(t *testing.T) {
	h, _, invoiceSvc := newUploadHandler()

	invoiceSvc.On("UploadInvoice", mock.Anything, mock.AnythingOfType("service.UploadInput")).
		Return(&service.InvoiceUploadResult{
			Parsed: &domain.ParsedInvoice{Period: "2025-09", Vendor: "GreenCity"},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload-invoice", "invoice.pdf", []byte("%PDF-1.4 fake"))

	h.UploadInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	invoiceSvc.AssertExpectations(t)
}

func TestUploadInvoice_ParseFailureMapsToBadGateway(t *testing.T) {
	h, _, invoiceSvc := newUploadHandler()

	invoiceSvc.On("UploadInvoice", mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvoiceParseFailed)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload-invoice", "invoice.pdf", []byte("%PDF-1.4 fake"))

	h.UploadInvoice(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVOICE_PARSE_FAILED", resp.Error.Code)
}

func TestUploadInvoice_UnsupportedTypeMapsTo415(t *testing.T) {
	h, _, invoiceSvc := newUploadHandler()

	invoiceSvc.On("UploadInvoice", mock.Anything, mock.Anything).
		Return(nil, domain.ErrUnsupportedFileType)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload-invoice", "bin.png", []byte("fake-image"))

	h.UploadInvoice(c)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestUploadImage_UnknownErrorMapsTo500(t *testing.T) {
	h, uploadSvc, _ := newUploadHandler()

	uploadSvc.On("UploadImage", mock.Anything, mock.Anything).
		Return(nil, errors.New("boom"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/upload-image", "bin.png", []byte("fake-image"))

	h.UploadImage(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
