// main.go - Entry point for the dress suggestion backend server

package main // Declares the package name

import ( // Import required packages
	"context"   // Startup and shutdown deadlines
	"errors"    // Server closed check
	"net/http"  // HTTP server
	"os"        // Exit codes and signals
	"os/signal" // Shutdown signals
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging

	"dress-suggestion-backend/config"     // Project config management
	"dress-suggestion-backend/database"   // Store connection
	"dress-suggestion-backend/handlers"   // HTTP handlers for API endpoints
	"dress-suggestion-backend/hasher"     // Password hashing
	"dress-suggestion-backend/middleware" // CORS
	"dress-suggestion-backend/mqtt"       // Upload events
	"dress-suggestion-backend/service"    // Business logic
)

const shutdownTimeout = 5 * time.Second

func main() { // Main function, program entry point
	// STEP 1: Load configuration and build the logger
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := newLogger(cfg)
	gin.SetMode(cfg.RouterMode())

	// STEP 2: Connect to the store; the service cannot run without it
	store, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Fatal("DB connection error")
	}
	log.WithField("driver", cfg.DBDriver).Info("database connected")

	if err := run(cfg, store, log); err != nil {
		log.WithError(err).Error("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, store database.Store, log *logrus.Logger) error {
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.WithError(err).Warn("closing database")
		}
	}()

	h, err := hasher.NewBcrypt(cfg.BcryptCost)
	if err != nil {
		return err
	}
	accounts := service.NewAccounts(store, h, log)

	// STEP 3: Create the default admin if configured and none exists
	if cfg.CreateAdmin {
		if _, err := accounts.EnsureAdmin(context.Background(), cfg.AdminUserName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
	}

	// STEP 4: Optional MQTT connection for upload events
	var publisher service.Publisher // Stays nil when no broker is configured
	if cfg.MQTTBroker != "" {
		client, err := mqtt.Connect(cfg.MQTTBroker, cfg.MQTTClientID)
		if err != nil {
			return err
		}
		defer client.Disconnect()
		publisher = client
		log.WithField("broker", cfg.MQTTBroker).Info("MQTT connected")
	}

	uploader, err := service.NewUploader(cfg.ImageDir, cfg.PublicBaseURL, store, publisher, cfg.MQTTTopic, log)
	if err != nil {
		return err
	}

	// STEP 5: Build the router and start the web server
	handler := handlers.New(accounts, service.NewCatalog(store), uploader, store, cfg.MaxUploadSize, log)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           middleware.CORS(handlers.NewRouter(handler)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// STEP 6: Wait for a shutdown signal, then drain in-flight requests
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-done:
		log.WithField("signal", sig.String()).Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// newLogger configures logrus from LOG_LEVEL and LOG_FORMAT
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
