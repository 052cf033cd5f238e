package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// 検索・ページング付きで顧客を返す。並びはid昇順固定（ページ間で重複/欠落させない）。
func (r *CustomerGormRepository) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Customer{})

	// search はfirst_name/last_name/emailの部分一致（大文字小文字無視、OR）
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	//total（検索条件のみ反映、page/limitは無視）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Customer{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Order("id asc").Offset(offset).Limit(q.Limit).Find(&customers).Error; err != nil {
		return []model.Customer{}, 0, err
	}

	return customers, total, nil
}

// IDで顧客を取得
func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}
