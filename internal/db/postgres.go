package db

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	Logger       logrus.FieldLogger
}

// Connect opens a GORM handle on PostgreSQL and checks the server answers.
func Connect(opts Options) (*gorm.DB, error) {
	if opts.URL == "" {
		return nil, errors.New("database URL is empty")
	}

	db, err := gorm.Open(postgres.Open(opts.URL), &gorm.Config{
		Logger: NewGormLogger(opts.Logger),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get connection pool")
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	return db, nil
}

// Migrate creates or updates the catalog tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}

// Ping checks the database connection; used by the health endpoint.
func Ping(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
