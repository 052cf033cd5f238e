package repository

import "context"

// DB疎通確認だけを約束。
type HealthChecker interface {
	Ping(ctx context.Context) error
}
