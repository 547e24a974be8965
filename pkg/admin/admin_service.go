package admin

import (
	"CampusFind-Backend/domain"
	"context"
	"errors"

	"gorm.io/gorm"
)

const recentReportsLimit = 10

type (
	AdminService interface {
		GetAdminStats(ctx context.Context) (*domain.AdminStats, error)
		DeleteReport(ctx context.Context, req domain.DeleteReportRequest) error
	}

	adminService struct {
		adminRepository AdminRepository
	}
)

func NewAdminService(adminRepository AdminRepository) AdminService {
	return &adminService{
		adminRepository: adminRepository,
	}
}

func (s *adminService) GetAdminStats(ctx context.Context) (*domain.AdminStats, error) {
	totalReports, err := s.adminRepository.CountReports(ctx)
	if err != nil {
		return nil, err
	}
	resolvedReports, err := s.adminRepository.CountResolvedReports(ctx)
	if err != nil {
		return nil, err
	}
	usersCount, err := s.adminRepository.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	pendingClaims, err := s.adminRepository.CountPendingClaims(ctx)
	if err != nil {
		return nil, err
	}
	recentReports, err := s.adminRepository.GetRecentReports(ctx, recentReportsLimit)
	if err != nil {
		return nil, err
	}

	recent := make([]*domain.AdminReport, 0, len(recentReports))
	for _, r := range recentReports {
		entry := &domain.AdminReport{
			ID:     r.ID.String(),
			Status: r.Status,
			Date:   r.Date,
		}
		if entry.Date == "" {
			entry.Date = r.CreatedAt.Format("2006-01-02")
		}
		if r.Status == domain.ReportStatusFound {
			entry.Type = "Found"
		} else {
			entry.Type = "Lost"
		}
		if r.Item != nil {
			entry.Name = r.Item.Name
		}
		if r.User != nil {
			entry.UserEmail = r.User.Email
		}
		recent = append(recent, entry)
	}

	return &domain.AdminStats{
		TotalReports:    totalReports,
		ResolvedReports: resolvedReports,
		UsersCount:      usersCount,
		PendingClaims:   pendingClaims,
		RecentReports:   recent,
	}, nil
}

func (s *adminService) DeleteReport(ctx context.Context, req domain.DeleteReportRequest) error {
	report, err := s.adminRepository.GetReportByItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}
	return s.adminRepository.DeleteReportCascade(ctx, report.ID.String(), req.ItemID)
}
