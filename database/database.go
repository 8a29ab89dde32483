// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping

	"dress-suggestion-backend/config" // Project config
	"dress-suggestion-backend/models" // Stored documents
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Store is the data access contract used by the services. Every error other
// than ErrNotFound is an infrastructure failure.
type Store interface {
	HomePages(ctx context.Context) ([]models.HomePage, error)
	RandomDressTheme(ctx context.Context) ([]models.DressTheme, error) // 0 or 1 element
	CreateDressTheme(ctx context.Context, theme *models.DressTheme) (string, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindAdminByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
	CountAdmins(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Connect opens the store selected by cfg.DBDriver
func Connect(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		store, err := ConnectMongo(ctx, cfg.MongoURL, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverSQLite:
		store, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
}
