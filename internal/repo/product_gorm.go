package repo

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository is a PostgreSQL implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// productsQuery translates the filter into a single SELECT joining the
// category, with WHERE, ORDER BY, OFFSET and LIMIT applied in that order.
func productsQuery(db *gorm.DB, filter ProductFilter) *gorm.DB {
	q := db.Model(&models.Product{}).Joins("Category")

	for _, pred := range productPredicates(filter) {
		q = q.Where(pred.clause, pred.args...)
	}

	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Table: clause.CurrentTable, Name: filter.SortColumn.dbColumn()},
		Desc:   filter.SortDirection == Descending,
	})
	if filter.SortColumn != SortByID {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
	}

	return q.Offset(filter.Offset()).Limit(filter.PageSize)
}

func (r *GormProductRepository) GetProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products := []models.Product{}
	if err := productsQuery(r.db.WithContext(ctx), filter).Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return products, nil
}

func (r *GormProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Joins("Category").Where("products.id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get product %s", id)
	}
	return &product, nil
}

func (r *GormProductRepository) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedBy == "" {
		product.CreatedBy = models.DefaultAuthor
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&product).Error
	if isForeignKeyViolation(err) {
		return models.Product{}, ErrUnknownCategory
	}
	if err != nil {
		return models.Product{}, errors.Wrap(err, "insert product")
	}
	return r.reload(ctx, product.ID)
}

func (r *GormProductRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":          product.Name,
			"price":         product.Price,
			"category_id":   product.CategoryID,
			"modified_by":   product.ModifiedBy,
			"modified_date": product.ModifiedDate,
		})
	if isForeignKeyViolation(res.Error) {
		return models.Product{}, ErrUnknownCategory
	}
	if res.Error != nil {
		return models.Product{}, errors.Wrapf(res.Error, "update product %s", product.ID)
	}
	if res.RowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.reload(ctx, product.ID)
}

func (r *GormProductRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error; err != nil {
		return errors.Wrapf(err, "delete product %s", id)
	}
	return nil
}

func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return n, nil
}

func (r *GormProductRepository) reload(ctx context.Context, id uuid.UUID) (models.Product, error) {
	p, err := r.GetProductByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if p == nil {
		return models.Product{}, ErrProductNotFound
	}
	return *p, nil
}
