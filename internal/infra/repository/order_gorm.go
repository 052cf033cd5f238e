package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 1顧客の注文を1クエリで集計する。Selectの別名はOrderStatsのフィールド名と一致させる。
// user_idだけで絞るので、親のいない注文が混ざっていても落ちない。
func (r *OrderGormRepository) StatsByCustomer(ctx context.Context, customerID int64) (repo.OrderStats, error) {
	var stats repo.OrderStats

	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select(`COUNT(*) AS total_orders,
			COUNT(CASE WHEN status = ? THEN 1 END) AS pending_orders,
			COUNT(CASE WHEN status = ? THEN 1 END) AS shipped_orders,
			COUNT(CASE WHEN status = ? THEN 1 END) AS delivered_orders,
			COUNT(CASE WHEN status = ? THEN 1 END) AS returned_orders,
			COALESCE(SUM(num_of_item), 0) AS total_items,
			MIN(created_at) AS first_order_date,
			MAX(created_at) AS last_order_date`,
			model.OrderStatusPending, model.OrderStatusShipped,
			model.OrderStatusDelivered, model.OrderStatusReturned).
		Where("user_id = ?", customerID).
		Scan(&stats).Error
	if err != nil {
		return repo.OrderStats{}, err
	}

	return stats, nil
}

// 1顧客の注文1ページ分と総件数。並びはcreated_at降順（同時刻はorder_id降順で安定化）。
func (r *OrderGormRepository) ListByCustomer(ctx context.Context, customerID int64, q repo.OrderListQuery) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", customerID)

	//statusフィルタ（格納値の大小文字に依存しない）
	if q.Status != "" {
		tx = tx.Where("LOWER(status) = ?", q.Status)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Order("created_at desc").Order("order_id desc").
		Offset(offset).Limit(q.Limit).Find(&orders).Error; err != nil {
		return []model.Order{}, 0, err
	}

	return orders, total, nil
}

// order_idで注文を取得
func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}
