package store

import (
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"adaptly/internal/models"
)

// ProductReader is the keyed read access the adaptation paths need. The
// engine never writes canonical records; only the catalog surface does.
type ProductReader interface {
	Get(id string) (*models.Product, error)
}

// Store wraps the catalog database. SQLite is used for development,
// PostgreSQL everywhere else.
type Store struct {
	DB *gorm.DB
}

func New(databaseURL string) (*Store, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		sku TEXT UNIQUE,
		title TEXT NOT NULL,
		description TEXT,
		price DECIMAL(12,2),
		cost_price DECIMAL(12,2),
		currency TEXT DEFAULT 'EUR',
		category TEXT,
		images TEXT,
		tags TEXT,
		stock_quantity INTEGER DEFAULT 0,
		brand TEXT,
		supplier_name TEXT,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	);
	`

	if err := db.Exec(createTablesSQL).Error; err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Store{DB: db}, nil
}

// Get fetches one canonical product by id.
func (s *Store) Get(id string) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Ping verifies the underlying connection is alive.
func (s *Store) Ping() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
