package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type CustomerListQuery struct {
	Page   int
	Limit  int
	Search string
}

// 顧客の取得だけを約束。書き込みは外部の取り込みバッチが行う。
type CustomerRepository interface {
	// 検索条件に合う1ページ分と、条件に合う総件数を返す。
	List(ctx context.Context, q CustomerListQuery) ([]model.Customer, int64, error)
	// IDから顧客を1件取得する。
	FindByID(ctx context.Context, id int64) (model.Customer, error)
}
