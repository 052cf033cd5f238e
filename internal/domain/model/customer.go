package model

import "time"

// 顧客（usersテーブル）。取り込みは外部バッチが行うので、このAPIからは読み取り専用。
type Customer struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(255);not null" json:"last_name"`
	Email     string  `gorm:"type:varchar(255);not null;index" json:"email"`
	Age       *int    `json:"age"`
	Gender    *string `gorm:"type:varchar(1)" json:"gender"`

	//住所
	Address    string `gorm:"type:varchar(255)" json:"address"`
	City       string `gorm:"type:varchar(255)" json:"city"`
	State      string `gorm:"type:varchar(255)" json:"state"`
	PostalCode string `gorm:"type:varchar(20)" json:"postal_code"`
	Country    string `gorm:"type:varchar(255)" json:"country"`

	//緯度経度（10進度）
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	//流入検索ワード
	SearchTerm *string `gorm:"column:search_term;type:varchar(255)" json:"search_term"`

	//登録日時
	Timestamp time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
}

func (Customer) TableName() string {
	return "users"
}
