package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRestockRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormRestockRepository(db *gorm.DB) *GormRestockRepository {
	return &GormRestockRepository{db: db, now: time.Now}
}

func (r *GormRestockRepository) Restock(ctx context.Context, productID int64, quantity int) (models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("id = ?", productID).
			UpdateColumn("stock_level", gorm.Expr("stock_level + ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}

		entry := models.RestockLog{ProductID: productID, Quantity: quantity, Timestamp: r.now().UTC()}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return tx.First(&p, productID).Error
	})
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *GormRestockRepository) Recent(ctx context.Context, limit int) ([]models.RestockLog, error) {
	logs := []models.RestockLog{}
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	for i := range logs {
		logs[i].Timestamp = logs[i].Timestamp.UTC()
	}
	return logs, nil
}

func (r *GormRestockRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.RestockLog{}).
		Where(clause.Gte{Column: "timestamp", Value: since.UTC()}).
		Count(&total).Error
	return int(total), err
}
