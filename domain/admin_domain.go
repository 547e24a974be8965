package domain

import (
	"errors"
)

var (
	MessageSuccessGetAdminStats = "admin statistics retrieved successfully"
	MessageSuccessDeleteReport  = "report deleted successfully"

	MessageFailedGetAdminStats = "failed to retrieve admin statistics"
	MessageFailedDeleteReport  = "failed to delete report"

	ErrAdminOnly = errors.New("admin access required")
)

type (
	AdminStats struct {
		TotalReports    int64          `json:"total_reports"`
		ResolvedReports int64          `json:"resolved_reports"`
		UsersCount      int64          `json:"users_count"`
		PendingClaims   int64          `json:"pending_claims"`
		RecentReports   []*AdminReport `json:"recent_reports"`
	}

	AdminReport struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Type      string `json:"type"`
		UserEmail string `json:"user_email"`
		Status    string `json:"status"`
		Date      string `json:"date"`
	}

	DeleteReportRequest struct {
		ItemID string `json:"item_id" validate:"required,uuid"`
	}
)
