package report

import (
	"CampusFind-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		CreateItem(ctx context.Context, item *entities.Item) error
		CreateReport(ctx context.Context, report *entities.Report) error
		GetReportByID(ctx context.Context, id string) (*entities.Report, error)
		GetUserReports(ctx context.Context, userID string) ([]*entities.Report, error)
		SearchReports(ctx context.Context, query, status string) ([]*entities.Report, error)
		GetItemWithReports(ctx context.Context, itemID string) (*entities.Item, error)
		GetLatestReportByItem(ctx context.Context, itemID string) (*entities.Report, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{
		db: db,
	}
}

func (r *reportRepository) CreateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *reportRepository) CreateReport(ctx context.Context, report *entities.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetReportByID(ctx context.Context, id string) (*entities.Report, error) {
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

func (r *reportRepository) GetUserReports(ctx context.Context, userID string) ([]*entities.Report, error) {
	var reports []*entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) SearchReports(ctx context.Context, query, status string) ([]*entities.Report, error) {
	var reports []*entities.Report

	q := r.db.WithContext(ctx).
		Preload("Item").
		Joins("JOIN items ON items.id = reports.item_id")

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where(
			"items.name ILIKE ? OR items.description ILIKE ? OR items.category ILIKE ? OR reports.location ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if status != "" {
		q = q.Where("reports.status = ?", status)
	}

	if err := q.Order("reports.created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) GetItemWithReports(ctx context.Context, itemID string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).
		Preload("Reports").
		Preload("Reports.User").
		Preload("Reports.Claims").
		Where("id = ?", itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *reportRepository) GetLatestReportByItem(ctx context.Context, itemID string) (*entities.Report, error) {
	var report entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
