package repository

import (
	"app/internal/domain/model"
	"context"
	"time"
)

// 1顧客分の注文一覧検索
type OrderListQuery struct {
	Page   int
	Limit  int
	Status string
}

// 1顧客の注文を1クエリで集計した結果。
// 注文ゼロでも各カウントは0、日付はnilで返る。
type OrderStats struct {
	TotalOrders     int64
	PendingOrders   int64
	ShippedOrders   int64
	DeliveredOrders int64
	ReturnedOrders  int64
	TotalItems      int64
	FirstOrderDate  *time.Time
	LastOrderDate   *time.Time
}

// 注文の取得・集計だけを約束。
type OrderRepository interface {
	// user_idで絞った集計（件数・ステータス別件数・点数合計・最初/最後の注文日時）。
	StatsByCustomer(ctx context.Context, customerID int64) (OrderStats, error)
	// 1顧客の注文1ページ分と総件数。Statusが空なら全件。
	ListByCustomer(ctx context.Context, customerID int64, q OrderListQuery) ([]model.Order, int64, error)
	// order_idから注文を1件取得する。
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
}
