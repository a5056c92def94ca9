package repo

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository is a PostgreSQL implementation of CategoryRepository.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (r *GormCategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get category %s", id)
	}
	return &category, nil
}

func (r *GormCategoryRepository) AddCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.CreatedBy == "" {
		category.CreatedBy = models.DefaultAuthor
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&category).Error; err != nil {
		return models.Category{}, errors.Wrap(err, "insert category")
	}
	return category, nil
}

func (r *GormCategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":          category.Name,
			"description":   category.Description,
			"modified_by":   category.ModifiedBy,
			"modified_date": category.ModifiedDate,
		})
	if res.Error != nil {
		return models.Category{}, errors.Wrapf(res.Error, "update category %s", category.ID)
	}
	if res.RowsAffected == 0 {
		return models.Category{}, ErrCategoryNotFound
	}

	updated, err := r.GetCategoryByID(ctx, category.ID)
	if err != nil {
		return models.Category{}, err
	}
	if updated == nil {
		return models.Category{}, ErrCategoryNotFound
	}
	return *updated, nil
}

func (r *GormCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error
	if isForeignKeyViolation(err) {
		return ErrCategoryInUse
	}
	if err != nil {
		return errors.Wrapf(err, "delete category %s", id)
	}
	return nil
}
