package usecase

import (
	"errors"
	"fmt"
)

// HTTPErrorはhandler側でそのままエラー応答に変換できる失敗。
// Kindは応答のerror欄に出す短い種別、Messageは人間向けの詳細。
type HTTPError struct {
	Status  int
	Kind    string
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Kind, e.Message)
}

func NewHTTPError(status int, kind string, message string) error {
	return &HTTPError{
		Status:  status,
		Kind:    kind,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
