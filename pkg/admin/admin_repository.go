package admin

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		CountReports(ctx context.Context) (int64, error)
		CountResolvedReports(ctx context.Context) (int64, error)
		CountUsers(ctx context.Context) (int64, error)
		CountPendingClaims(ctx context.Context) (int64, error)
		GetRecentReports(ctx context.Context, limit int) ([]*entities.Report, error)
		GetReportByItem(ctx context.Context, itemID string) (*entities.Report, error)
		DeleteReportCascade(ctx context.Context, reportID, itemID string) error
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (r *adminRepository) CountReports(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Report{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountResolvedReports(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Report{}).
		Where("status IN ?", []string{domain.ReportStatusClaimed, domain.ReportStatusReturned}).
		Count(&count).Error
	return count, err
}

func (r *adminRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountPendingClaims(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Where("status = ?", domain.ClaimStatusPending).
		Count(&count).Error
	return count, err
}

func (r *adminRepository) GetRecentReports(ctx context.Context, limit int) ([]*entities.Report, error) {
	var reports []*entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *adminRepository) GetReportByItem(ctx context.Context, itemID string) (*entities.Report, error) {
	var report entities.Report
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReportCascade removes the report's claims, the report, and the item
// in one transaction.
func (r *adminRepository) DeleteReportCascade(ctx context.Context, reportID, itemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.Claim{}, "found_report_id = ?", reportID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Report{}, "id = ?", reportID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Item{}, "id = ?", itemID).Error; err != nil {
			return err
		}
		return nil
	})
}
