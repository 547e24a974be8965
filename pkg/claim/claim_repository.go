package claim

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ClaimRepository interface {
		CreateClaim(ctx context.Context, claim *entities.Claim) error
		GetClaimByID(ctx context.Context, id string) (*entities.Claim, error)
		GetUserClaims(ctx context.Context, claimerID string) ([]*entities.Claim, error)
		GetIncomingClaims(ctx context.Context, ownerID string) ([]*entities.Claim, error)
		ApproveClaim(ctx context.Context, claimID, reportID, ownerID string, processedAt time.Time) error
		RejectClaim(ctx context.Context, claimID string, processedAt time.Time) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{
		db: db,
	}
}

func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("FoundReport").
		Preload("FoundReport.Item").
		Preload("FoundReport.User").
		Preload("Claimer").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetUserClaims(ctx context.Context, claimerID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("FoundReport").
		Preload("FoundReport.Item").
		Where("claimer_id = ?", claimerID).
		Order("created_at DESC").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) GetIncomingClaims(ctx context.Context, ownerID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("FoundReport").
		Preload("FoundReport.Item").
		Preload("Claimer").
		Joins("JOIN reports ON reports.id = claims.found_report_id").
		Where("reports.user_id = ?", ownerID).
		Order("CASE WHEN claims.status = 'pending' THEN 0 ELSE 1 END, claims.created_at DESC").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

// ApproveClaim commits the whole approval as one transaction: the winning
// claim, the report status, the finder's points, and the rejection of every
// competing pending claim. The row lock on the winning claim serializes
// concurrent decisions against the same report.
func (r *claimRepository) ApproveClaim(ctx context.Context, claimID, reportID, ownerID string, processedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var claim entities.Claim
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", claimID).
			First(&claim).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrClaimNotFound
			}
			return err
		}
		if claim.Status != domain.ClaimStatusPending {
			return domain.ErrClaimAlreadyProcessed
		}

		if err := tx.Model(&entities.Claim{}).
			Where("id = ?", claimID).
			Updates(map[string]interface{}{
				"status":       domain.ClaimStatusApproved,
				"processed_at": processedAt,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Report{}).
			Where("id = ?", reportID).
			Update("status", domain.ReportStatusClaimed).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.User{}).
			Where("id = ?", ownerID).
			Update("finder_points", gorm.Expr("finder_points + ?", domain.FinderPointsAward)).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Claim{}).
			Where("found_report_id = ? AND id <> ? AND status = ?", reportID, claimID, domain.ClaimStatusPending).
			Updates(map[string]interface{}{
				"status":       domain.ClaimStatusRejected,
				"processed_at": processedAt,
			}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *claimRepository) RejectClaim(ctx context.Context, claimID string, processedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Where("id = ? AND status = ?", claimID, domain.ClaimStatusPending).
		Updates(map[string]interface{}{
			"status":       domain.ClaimStatusRejected,
			"processed_at": processedAt,
		}).Error
}
