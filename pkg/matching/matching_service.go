package matching

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"CampusFind-Backend/pkg/notification"
	"CampusFind-Backend/pkg/telegram"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"gorm.io/gorm"
)

type (
	MatchingService interface {
		FindMatchesForReport(ctx context.Context, reportID string) ([]*domain.MatchCandidate, error)
		BrowseMatches(ctx context.Context) ([]*domain.MatchCandidate, error)
		ScanAndNotify(ctx context.Context, reportID string) error
	}

	matchingService struct {
		matchingRepository  MatchingRepository
		notificationService notification.NotificationService
		telegramService     telegram.TelegramService
	}
)

func NewMatchingService(
	matchingRepository MatchingRepository,
	notificationService notification.NotificationService,
	telegramService telegram.TelegramService,
) MatchingService {
	return &matchingService{
		matchingRepository:  matchingRepository,
		notificationService: notificationService,
		telegramService:     telegramService,
	}
}

// FindMatchesForReport scans all reports of the opposite status and returns
// candidates above ScanThreshold, highest confidence first. It reads but
// never writes persistent state, so repeated calls over unchanged data give
// identical results.
func (s *matchingService) FindMatchesForReport(ctx context.Context, reportID string) ([]*domain.MatchCandidate, error) {
	report, err := s.matchingRepository.GetReportWithItem(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMatchReportNotFound
		}
		return nil, err
	}

	targetStatus := domain.ReportStatusFound
	if report.Status == domain.ReportStatusFound {
		targetStatus = domain.ReportStatusLost
	}

	candidates, err := s.matchingRepository.GetReportsByStatus(ctx, targetStatus)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.MatchCandidate, 0)
	for _, candidate := range candidates {
		lost, found := orientPair(report, candidate)
		result, ok := Score(lost, found)
		if !ok || result.Confidence <= ScanThreshold {
			continue
		}
		matches = append(matches, buildCandidate(lost, found, result))
	}

	sortByConfidence(matches)
	return matches, nil
}

// BrowseMatches pairs every lost report against every found report for the
// matching page, with the permissive browse threshold.
func (s *matchingService) BrowseMatches(ctx context.Context) ([]*domain.MatchCandidate, error) {
	lostReports, err := s.matchingRepository.GetReportsByStatus(ctx, domain.ReportStatusLost)
	if err != nil {
		return nil, err
	}
	foundReports, err := s.matchingRepository.GetReportsByStatus(ctx, domain.ReportStatusFound)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.MatchCandidate, 0)
	for _, lost := range lostReports {
		for _, found := range foundReports {
			result, ok := Score(lost, found)
			if !ok || result.Confidence <= BrowseThreshold {
				continue
			}
			matches = append(matches, buildCandidate(lost, found, result))
		}
	}

	sortByConfidence(matches)
	return matches, nil
}

// ScanAndNotify runs the post-submission scan and pushes notifications for
// strong matches. Invoked off the request path by the dispatcher; failures
// are the caller's to log, never the reporter's.
func (s *matchingService) ScanAndNotify(ctx context.Context, reportID string) error {
	report, err := s.matchingRepository.GetReportWithItem(ctx, reportID)
	if err != nil {
		return err
	}

	matches, err := s.FindMatchesForReport(ctx, reportID)
	if err != nil {
		return err
	}

	counterpartType := "Found"
	if report.Status == domain.ReportStatusFound {
		counterpartType = "Lost"
	}

	for _, match := range matches {
		if match.Confidence <= NotifyThreshold {
			continue
		}

		counterpart := match.Found
		if report.Status == domain.ReportStatusFound {
			counterpart = match.Lost
		}

		owner, err := s.matchingRepository.GetReportWithItem(ctx, counterpart.ReportID)
		if err != nil {
			log.Printf("match notification: load report %s failed: %v", counterpart.ReportID, err)
			continue
		}

		message := fmt.Sprintf(
			"Match Found: We found a %s item similar to yours! (%d%% confidence)",
			counterpartType, match.Confidence,
		)
		if err := s.notificationService.Notify(ctx, owner.UserID, message, domain.NotificationTypeMatch, "/matching"); err != nil {
			log.Printf("match notification for report %s failed: %v", counterpart.ReportID, err)
		}

		if owner.User != nil && owner.User.TelegramChatID != "" {
			s.telegramService.SendMessage(owner.User.TelegramChatID, fmt.Sprintf(
				"*Potential Match Found!*\n\nWe found a *%s* item that matches your report.\n\nItem: *%s*\nConfidence: %d%%\n\nCheck the Matching page for details!",
				counterpartType, report.Item.Name, match.Confidence,
			))
		}
	}
	return nil
}

// orientPair fixes the lost/found roles regardless of which report
// triggered the scan, so the date filter always runs in the same direction.
func orientPair(report, candidate *entities.Report) (lost, found *entities.Report) {
	if report.Status == domain.ReportStatusFound {
		return candidate, report
	}
	return report, candidate
}

func buildCandidate(lost, found *entities.Report, score *MatchScore) *domain.MatchCandidate {
	return &domain.MatchCandidate{
		Lost:       matchedReport(lost),
		Found:      matchedReport(found),
		Confidence: score.Confidence,
		Reasons:    score.Reasons,
	}
}

func matchedReport(report *entities.Report) domain.MatchedReport {
	return domain.MatchedReport{
		ReportID: report.ID.String(),
		ItemID:   report.ItemID.String(),
		Name:     report.Item.Name,
		Brand:    report.Item.Brand,
		Color:    report.Item.Color,
		Location: report.Location,
		Date:     report.Date,
	}
}

func sortByConfidence(matches []*domain.MatchCandidate) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
}
