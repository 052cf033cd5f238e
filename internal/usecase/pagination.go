package usecase

import (
	"fmt"
	"net/http"
)

// ページネーションのメタ情報（全一覧系エンドポイント共通）
type PaginationOutput struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// page/limitの検証。範囲外は400で弾く（丸めない）。
func validatePageLimit(page int, limit int, maxPageSize int) error {
	if page < 1 {
		return NewHTTPError(http.StatusBadRequest, "Invalid page number", "Page number must be 1 or greater")
	}
	if limit < 1 || limit > maxPageSize {
		return NewHTTPError(http.StatusBadRequest, "Invalid limit",
			fmt.Sprintf("Limit must be between 1 and %d", maxPageSize))
	}
	return nil
}

// total_pages = ceil(total/limit)（0件なら0）。
// total_pagesを超えたpageはエラーにせず、空ページ＋整合の取れたメタを返す。
func buildPagination(page int, limit int, total int64) PaginationOutput {
	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	return PaginationOutput{
		Page:       page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}
