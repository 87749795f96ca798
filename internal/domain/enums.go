package domain

// Route is the destination bucket for a waste item.
type Route string

const (
	RouteRecycle  Route = "recycle"
	RouteCompost  Route = "compost"
	RouteLandfill Route = "landfill"
)

// ValidRoutes lists every accepted route value.
var ValidRoutes = map[Route]bool{
	RouteRecycle:  true,
	RouteCompost:  true,
	RouteLandfill: true,
}

// EventSource tags where a waste event came from.
type EventSource string

const (
	SourceImage   EventSource = "image"
	SourceInvoice EventSource = "invoice"
)

// Mode selects between cloud-backed and local/mock adapters.
type Mode string

const (
	ModeCloud Mode = "cloud"
	ModeLocal Mode = "local"
)

// FileType represents the allowed upload file types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedImageContentTypes maps image MIME types accepted on /upload-image.
var AllowedImageContentTypes = map[string]FileType{
	"image/jpeg": FileTypeJPG,
	"image/png":  FileTypePNG,
}

// AllowedInvoiceContentTypes maps MIME types accepted on /upload-invoice.
var AllowedInvoiceContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}
