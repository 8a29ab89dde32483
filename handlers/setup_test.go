// setup_test.go - Shared test environment for handler tests

package handlers

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dress-suggestion-backend/database"
	"dress-suggestion-backend/hasher"
	"dress-suggestion-backend/models"
	"dress-suggestion-backend/service"
)

const testBaseURL = "http://dress.test"

// testEnv is a router backed by a fresh SQLite store and image directory
type testEnv struct {
	router   *gin.Engine
	store    *database.SQLiteStore
	accounts *service.Accounts
	dbPath   string
	imageDir string
}

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestEnv creates a new database and image directory for each test
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	imageDir := filepath.Join(dir, "images")

	store, err := database.OpenSQLite(dbPath) // Connect and migrate
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	log := logrus.New()
	log.SetOutput(io.Discard)

	h, err := hasher.NewBcrypt(bcrypt.MinCost) // Cheap hashing keeps tests fast
	require.NoError(t, err)

	accounts := service.NewAccounts(store, h, log)
	uploader, err := service.NewUploader(imageDir, testBaseURL, store, nil, "", log)
	require.NoError(t, err)

	handler := New(accounts, service.NewCatalog(store), uploader, store, 1<<20, log)
	return &testEnv{
		router:   NewRouter(handler),
		store:    store,
		accounts: accounts,
		dbPath:   dbPath,
		imageDir: imageDir,
	}
}

// createAdmin seeds an admin account the same way startup does
func (e *testEnv) createAdmin(t *testing.T, email, password string) {
	t.Helper()
	created, err := e.accounts.EnsureAdmin(context.Background(), "admin", email, password)
	require.NoError(t, err)
	require.True(t, created)
}

// closeStore makes every following store call fail
func (e *testEnv) closeStore(t *testing.T) {
	t.Helper()
	require.NoError(t, e.store.Close(context.Background()))
}

// count opens a second connection to the test database and counts rows of model
func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(e.dbPath), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func (e *testEnv) countUsers(t *testing.T) int64 {
	return e.count(t, &models.User{})
}

func (e *testEnv) countDressThemes(t *testing.T) int64 {
	return e.count(t, &models.DressTheme{})
}
