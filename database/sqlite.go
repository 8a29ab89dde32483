// sqlite.go - SQLite backend used for local runs and tests

package database // Declares the package name

import ( // Import required packages
	"context"       // Deadlines on every query
	"encoding/json" // Home page documents are stored as JSON text
	"errors"        // Sentinel mapping
	"fmt"           // Error wrapping

	"github.com/google/uuid" // Random ids
	"gorm.io/driver/sqlite"  // SQLite driver for GORM
	"gorm.io/gorm"           // GORM ORM
	"gorm.io/gorm/logger"    // Silences GORM query logs

	"dress-suggestion-backend/models"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store on a local SQLite file. It is meant for
// development and tests; ids are random UUID strings.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and creates missing tables.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Create tables if needed
	if err := db.AutoMigrate(&models.User{}, &models.DressTheme{}, &models.HomePageRecord{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// AddHomePage stores an opaque home page document. The HTTP API never writes
// home pages; this exists for seeding.
func (s *SQLiteStore) AddHomePage(ctx context.Context, page models.HomePage) (string, error) {
	raw, err := json.Marshal(page)
	if err != nil {
		return "", fmt.Errorf("encode home page: %w", err)
	}
	rec := models.HomePageRecord{ID: uuid.NewString(), Document: string(raw)}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("insert home page: %w", err)
	}
	return rec.ID, nil
}

func (s *SQLiteStore) HomePages(ctx context.Context) ([]models.HomePage, error) {
	var recs []models.HomePageRecord
	if err := s.db.WithContext(ctx).Order("rowid").Find(&recs).Error; err != nil { // rowid follows insertion order
		return nil, fmt.Errorf("find home pages: %w", err)
	}

	pages := make([]models.HomePage, 0, len(recs))
	for _, rec := range recs {
		page := models.HomePage{}
		if err := json.Unmarshal([]byte(rec.Document), &page); err != nil {
			return nil, fmt.Errorf("decode home page %s: %w", rec.ID, err)
		}
		page["_id"] = rec.ID
		pages = append(pages, page)
	}
	return pages, nil
}

func (s *SQLiteStore) RandomDressTheme(ctx context.Context) ([]models.DressTheme, error) {
	themes := []models.DressTheme{}
	if err := s.db.WithContext(ctx).Order("RANDOM()").Limit(1).Find(&themes).Error; err != nil {
		return nil, fmt.Errorf("sample dress themes: %w", err)
	}
	return themes, nil
}

func (s *SQLiteStore) CreateDressTheme(ctx context.Context, theme *models.DressTheme) (string, error) {
	theme.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(theme).Error; err != nil {
		return "", fmt.Errorf("insert dress theme: %w", err)
	}
	return theme.ID, nil
}

func (s *SQLiteStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, s.db.Where("email = ?", email))
}

func (s *SQLiteStore) FindAdminByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, s.db.Where("email = ? AND is_admin = ?", email, true))
}

func (s *SQLiteStore) findUser(ctx context.Context, q *gorm.DB) (*models.User, error) {
	var user models.User
	err := q.WithContext(ctx).Order("rowid").Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	user.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return user.ID, nil
}

func (s *SQLiteStore) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
