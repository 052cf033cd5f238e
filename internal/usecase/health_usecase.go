package usecase

import (
	"context"
	"time"

	repo "app/internal/repository"
)

type HealthUsecase struct {
	checker repo.HealthChecker
	version string
}

// DI
func NewHealthUsecase(checker repo.HealthChecker, version string) *HealthUsecase {
	return &HealthUsecase{checker: checker, version: version}
}

type HealthOutput struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// DBに素通しの疎通確認をして結果を返す。healthyかどうかは第2戻り値。
func (u *HealthUsecase) Check(ctx context.Context) (HealthOutput, bool) {
	now := time.Now()

	if err := u.checker.Ping(ctx); err != nil {
		return HealthOutput{
			Status:    "unhealthy",
			Database:  "disconnected",
			Timestamp: now,
			Error:     err.Error(),
		}, false
	}

	return HealthOutput{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: now,
		Version:   u.version,
	}, true
}
