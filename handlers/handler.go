// handler.go - Handler dependencies and route table

package handlers // Declares the package name

import ( // Import required packages
	"context"  // Ping deadline
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging

	"dress-suggestion-backend/middleware" // Request id and access log
	"dress-suggestion-backend/service"    // Business logic
)

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the services shared by every request. It is built once at startup.
type Handler struct {
	accounts  *service.Accounts
	catalog   *service.Catalog
	uploader  *service.Uploader
	pinger    Pinger
	maxUpload int64 // Largest accepted upload request body in bytes
	log       logrus.FieldLogger
}

func New(accounts *service.Accounts, catalog *service.Catalog, uploader *service.Uploader, pinger Pinger, maxUpload int64, log logrus.FieldLogger) *Handler {
	return &Handler{
		accounts:  accounts,
		catalog:   catalog,
		uploader:  uploader,
		pinger:    pinger,
		maxUpload: maxUpload,
		log:       log,
	}
}

// NewRouter - Creates the Gin engine with middleware, API routes and the image directory
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()                                                    // No default logger; ours is structured
	r.Use(gin.Recovery())                                             // Turn panics into 500s
	r.Use(middleware.RequestIDMiddleware(), middleware.Logger(h.log)) // Request id + access log
	r.MaxMultipartMemory = h.maxUpload                                // Larger parts spill to temp files

	// Theme routes
	r.GET("/homeTheme", h.HomeTheme)
	r.GET("/dressTheme", h.DressTheme)

	// Account routes
	r.POST("/Register", h.Register)
	r.POST("/Login", h.Login)
	r.POST("/AdminLogin", h.AdminLogin)

	// Upload route and the directory it writes to
	r.POST("/AdminUpload", h.AdminUpload)
	r.Static(service.ImagesRoute, h.uploader.Dir())

	r.GET("/health", h.Health)
	return r
}

// Health - Reports whether the store answers a ping
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.log.WithError(err).WithField("request_id", middleware.RequestID(c)).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
