package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusReturned  OrderStatus = "returned"
)

// KnownOrderStatus は小文字化済みのstatus値が4種のいずれかかを返す。
func KnownOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// 注文（ordersテーブル）。shipped_at等はそのステージ到達時のみ入る。
type Order struct {
	OrderID int64       `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	UserID  int64       `gorm:"not null;index" json:"user_id"`
	Status  OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	//非正規化された顧客の性別（取り込み元CSV由来）
	Gender *string `gorm:"type:varchar(1)" json:"gender"`

	CreatedAt   time.Time  `gorm:"not null;index" json:"created_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	ReturnedAt  *time.Time `json:"returned_at"`

	NumOfItem int64 `gorm:"not null" json:"num_of_item"`
}

func (Order) TableName() string {
	return "orders"
}
