package matching

import (
	"CampusFind-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MatchingRepository interface {
		GetReportWithItem(ctx context.Context, id string) (*entities.Report, error)
		GetReportsByStatus(ctx context.Context, status string) ([]*entities.Report, error)
	}

	matchingRepository struct {
		db *gorm.DB
	}
)

func NewMatchingRepository(db *gorm.DB) MatchingRepository {
	return &matchingRepository{
		db: db,
	}
}

func (r *matchingRepository) GetReportWithItem(ctx context.Context, id string) (*entities.Report, error) {
	var report entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Where("id = ?", id).
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *matchingRepository) GetReportsByStatus(ctx context.Context, status string) ([]*entities.Report, error) {
	var reports []*entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
