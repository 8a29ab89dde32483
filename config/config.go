// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"errors" // For validation errors
	"fmt"    // For formatting error messages
	"os"     // For checking the .env file

	"github.com/gin-gonic/gin"           // Gin run modes
	"github.com/ilyakaznacheev/cleanenv" // Reads env vars into the struct
	"github.com/joho/godotenv"           // Loads .env files
	"github.com/sirupsen/logrus"         // Log level parsing
	"golang.org/x/crypto/bcrypt"         // Cost bounds for the hasher
)

// Supported store backends
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

type Config struct { // Config struct holds all configuration values
	Port          string `env:"PORT" env-default:"4000"`                       // HTTP listen port
	DBDriver      string `env:"DB_DRIVER" env-default:"mongo"`                 // mongo or sqlite
	MongoURL      string `env:"MONGO_URL"`                                     // Mongo connection string
	MongoDB       string `env:"MONGO_DB" env-default:"dress-color-suggestion"` // Mongo database name
	SQLitePath    string `env:"SQLITE_PATH" env-default:"data.db"`             // Path to the SQLite database file
	ImageDir      string `env:"IMAGE_DIR" env-default:"images"`                // Where uploads are written
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`                               // Prefix for uploaded image URLs
	BcryptCost    int    `env:"BCRYPT_COST" env-default:"10"`                  // bcrypt work factor
	MaxUploadSize int64  `env:"MAX_UPLOAD_BYTES" env-default:"33554432"`       // Largest upload request body
	MQTTBroker    string `env:"MQTT_BROKER"`                                   // Empty disables upload events
	MQTTTopic     string `env:"MQTT_TOPIC" env-default:"dress/uploaded"`       // Topic for upload events
	MQTTClientID  string `env:"MQTT_CLIENT_ID" env-default:"dress-suggestion"` // MQTT client id
	CreateAdmin   bool   `env:"CREATE_ADMIN" env-default:"false"`              // Seed an admin at boot
	AdminUserName string `env:"ADMIN_USERNAME" env-default:"admin"`            // Seeded admin name
	AdminEmail    string `env:"ADMIN_EMAIL"`                                   // Seeded admin email
	AdminPassword string `env:"ADMIN_PASSWORD"`                                // Seeded admin password
	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`                  // logrus level
	LogFormat     string `env:"LOG_FORMAT" env-default:"text"`                 // text or json
	GinMode       string `env:"GIN_MODE"`                                      // debug, release or test; empty follows LOG_LEVEL
}

// Load reads config from a .env file (if any) and the environment, applying defaults.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil { // Only load .env when present
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil { // Read env vars with defaults
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURL == "" {
			return errors.New("MONGO_URL is required when DB_DRIVER=mongo")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.MaxUploadSize <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if c.CreateAdmin && (c.AdminEmail == "" || c.AdminPassword == "") {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required when CREATE_ADMIN=true")
	}
	switch c.GinMode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown GIN_MODE %q", c.GinMode)
	}
	return nil
}

// RouterMode returns the gin mode to run in. An explicit GIN_MODE wins;
// otherwise gin's debug output is only enabled at debug or trace log level.
func (c *Config) RouterMode() string {
	if c.GinMode != "" {
		return c.GinMode
	}
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil && level >= logrus.DebugLevel {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
