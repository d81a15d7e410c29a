package storage

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"utility-calculator/internal/models"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// NewSQLite opens the calculation history database and migrates it.
func NewSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %q", dsn)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql handle")
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(&models.Calculation{}), "migrate calculations")
}

// History stores evaluated expressions.
type History struct {
	db *gorm.DB
}

func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

func (h *History) Save(ctx context.Context, expression, result string) (*models.Calculation, error) {
	calc := &models.Calculation{
		Expression: expression,
		Result:     result,
	}
	if err := h.db.WithContext(ctx).Create(calc).Error; err != nil {
		return nil, errors.Wrap(err, "save calculation")
	}
	return calc, nil
}

// Recent returns up to limit calculations, newest first. Out of range limits
// are clamped.
func (h *History) Recent(ctx context.Context, limit int) ([]models.Calculation, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	calcs := make([]models.Calculation, 0, limit)
	err := h.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&calcs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list calculations")
	}
	return calcs, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql handle")
	}
	return sqlDB.Close()
}
