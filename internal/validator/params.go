package validator

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// 整数として読めない入力
	ErrNotAnInteger = errors.New("not an integer")

	// 正の整数ではない入力
	ErrNotPositive = errors.New("not a positive integer")
)

// IntParamはクエリ値を整数として読む。空文字はdefを返す。
func IntParam(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotAnInteger
	}
	return i, nil
}

// PositiveIDはパスのID値を正の整数として読む。
func PositiveID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrNotAnInteger
	}
	if id <= 0 {
		return 0, ErrNotPositive
	}
	return id, nil
}
