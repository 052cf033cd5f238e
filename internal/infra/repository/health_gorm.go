package repository

import (
	"context"

	"gorm.io/gorm"
)

type HealthGormRepository struct {
	db *gorm.DB
}

// DI
func NewHealthGormRepository(db *gorm.DB) *HealthGormRepository {
	return &HealthGormRepository{db: db}
}

// DBへの素通し疎通確認
func (r *HealthGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
