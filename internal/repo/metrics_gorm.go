package repo

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"gorm.io/gorm"
)

type GormMetricsRepository struct {
	db *gorm.DB
}

func NewGormMetricsRepository(db *gorm.DB) *GormMetricsRepository {
	return &GormMetricsRepository{db: db}
}

func (r *GormMetricsRepository) GetCatalogMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var m Metrics
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Product{}).Count(&m.TotalProducts).Error; err != nil {
		return m, errors.Wrap(err, "count products")
	}
	if err := db.Model(&models.Category{}).Count(&m.TotalCategories).Error; err != nil {
		return m, errors.Wrap(err, "count categories")
	}

	var largest []LargestCategory
	err := db.Table("products").
		Select("categories.id AS id, categories.name AS name, COUNT(*) AS product_count").
		Joins("JOIN categories ON categories.id = products.category_id").
		Group("categories.id, categories.name").
		Order("product_count DESC, categories.name ASC").
		Limit(1).
		Scan(&largest).Error
	if err != nil {
		return m, errors.Wrap(err, "largest category")
	}
	if len(largest) > 0 {
		m.LargestCategory = largest[0]
	}

	return m, nil
}
