package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"gorm.io/gorm"
)

// GormProductRepository stores products through gorm, whatever dialector the
// *gorm.DB was opened with.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *GormProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *GormProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).
		Select("name", "sku", "stock_level", "category", "price", "cost").
		Updates(map[string]any{
			"name":        p.Name,
			"sku":         p.SKU,
			"stock_level": p.StockLevel,
			"category":    p.Category,
			"price":       p.Price,
			"cost":        p.Cost,
		})
	if res.Error != nil {
		return models.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).Where("stock_level < ?", threshold).Order("id").Find(&products).Error
	return products, err
}
