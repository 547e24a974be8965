package report

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"CampusFind-Backend/internal/utils/storage"
	"CampusFind-Backend/pkg/matching"
	"CampusFind-Backend/pkg/notification"
	"CampusFind-Backend/pkg/telegram"
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReportService interface {
		SubmitReport(ctx context.Context, req domain.CreateReportRequest, userID string) (*domain.Report, error)
		GetUserReports(ctx context.Context, userID string) ([]*domain.Report, error)
		SearchItems(ctx context.Context, req domain.SearchItemsRequest) ([]*domain.SearchItem, error)
		UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
		GetItemDetails(ctx context.Context, itemID string) (*domain.ItemDetails, error)
		NotifyOwner(ctx context.Context, req domain.NotifyOwnerRequest, senderID, senderName string) error
	}

	reportService struct {
		reportRepository    ReportRepository
		matchDispatcher     matching.MatchDispatcher
		notificationService notification.NotificationService
		telegramService     telegram.TelegramService
		s3                  storage.AwsS3
	}
)

func NewReportService(
	reportRepository ReportRepository,
	matchDispatcher matching.MatchDispatcher,
	notificationService notification.NotificationService,
	telegramService telegram.TelegramService,
	s3 storage.AwsS3,
) ReportService {
	return &reportService{
		reportRepository:    reportRepository,
		matchDispatcher:     matchDispatcher,
		notificationService: notificationService,
		telegramService:     telegramService,
		s3:                  s3,
	}
}

func (s *reportService) SubmitReport(ctx context.Context, req domain.CreateReportRequest, userID string) (*domain.Report, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if req.Status != domain.ReportStatusLost && req.Status != domain.ReportStatusFound {
		return nil, domain.ErrInvalidReportStatus
	}

	itemID := uuid.New()

	var imagePath string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("item-%s", itemID.String()),
			req.Image,
			"items",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imagePath = s.s3.GetPublicLinkKey(objectKey)
	}

	item := &entities.Item{
		ID:          itemID,
		Name:        req.ItemName,
		Category:    req.Category,
		Description: req.Description,
		Brand:       req.Brand,
		Color:       req.Color,
		ImagePath:   imagePath,
	}
	if err := s.reportRepository.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	report := &entities.Report{
		ID:       uuid.New(),
		UserID:   userUUID,
		ItemID:   itemID,
		Status:   req.Status,
		Location: req.Location,
		Date:     req.Date,
	}
	if err := s.reportRepository.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	// Matching runs off the request path; the response does not wait for it.
	s.matchDispatcher.DispatchScan(report.ID.String())

	return &domain.Report{
		ID:        report.ID.String(),
		ItemID:    itemID.String(),
		Name:      req.ItemName,
		Category:  req.Category,
		Type:      displayType(req.Status),
		Status:    req.Status,
		Location:  req.Location,
		Date:      req.Date,
		ImagePath: imagePath,
	}, nil
}

func (s *reportService) GetUserReports(ctx context.Context, userID string) ([]*domain.Report, error) {
	reports, err := s.reportRepository.GetUserReports(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Report, 0, len(reports))
	for _, r := range reports {
		entry := &domain.Report{
			ID:        r.ID.String(),
			ItemID:    r.ItemID.String(),
			Type:      displayType(r.Status),
			Status:    r.Status,
			Location:  r.Location,
			Date:      reportDate(r),
			CreatedAt: r.CreatedAt,
		}
		if r.Item != nil {
			entry.Name = r.Item.Name
			entry.Category = r.Item.Category
			entry.ImagePath = r.Item.ImagePath
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *reportService) SearchItems(ctx context.Context, req domain.SearchItemsRequest) ([]*domain.SearchItem, error) {
	reports, err := s.reportRepository.SearchReports(ctx, req.Query, req.Type)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.SearchItem, 0, len(reports))
	for _, r := range reports {
		if r.Item == nil {
			continue
		}
		result = append(result, &domain.SearchItem{
			ID:          r.Item.ID.String(),
			Name:        r.Item.Name,
			Type:        displayType(r.Status),
			Status:      r.Status,
			Date:        reportDate(r),
			Location:    r.Location,
			Description: r.Item.Description,
			ImagePath:   r.Item.ImagePath,
		})
	}
	return result, nil
}

// UploadImage stores a standalone image and returns its public URL, for
// clients that upload before building the report form.
func (s *reportService) UploadImage(_ context.Context, file *multipart.FileHeader) (string, error) {
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("upload-%s", uuid.NewString()),
		file,
		"items",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func (s *reportService) GetItemDetails(ctx context.Context, itemID string) (*domain.ItemDetails, error) {
	item, err := s.reportRepository.GetItemWithReports(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	details := &domain.ItemDetails{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Brand:       item.Brand,
		Color:       item.Color,
		ImagePath:   item.ImagePath,
	}

	if len(item.Reports) > 0 {
		r := item.Reports[0]
		summary := &domain.ReportSummary{
			ID:         r.ID.String(),
			Status:     r.Status,
			Location:   r.Location,
			Date:       reportDate(r),
			ReporterID: r.UserID.String(),
		}
		if r.User != nil {
			summary.ReporterName = r.User.Name
			summary.ReporterEmail = r.User.Email
		}
		details.Report = summary

		for _, c := range r.Claims {
			details.Claims = append(details.Claims, &domain.Claim{
				ID:               c.ID.String(),
				ReportID:         c.FoundReportID.String(),
				ClaimerID:        c.ClaimerID.String(),
				ProofDescription: c.ProofDescription,
				Status:           c.Status,
				CreatedAt:        c.CreatedAt,
				ProcessedAt:      c.ProcessedAt,
			})
		}
	}

	return details, nil
}

// NotifyOwner lets a visitor ping the reporter of an item. Delivery is
// best-effort on both channels.
func (s *reportService) NotifyOwner(ctx context.Context, req domain.NotifyOwnerRequest, senderID, senderName string) error {
	report, err := s.reportRepository.GetLatestReportByItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}

	if report.UserID.String() == senderID {
		return domain.ErrSelfNotify
	}

	itemName := ""
	if report.Item != nil {
		itemName = report.Item.Name
	}

	message := fmt.Sprintf("Start Chat: Someone found your %q! Message: %q", itemName, req.Message)
	if err := s.notificationService.Notify(ctx, report.UserID, message, domain.NotificationTypeMatch, "/item/"+req.ItemID); err != nil {
		log.Printf("notify owner of item %s failed: %v", req.ItemID, err)
	}

	if report.User != nil && report.User.TelegramChatID != "" {
		s.telegramService.SendMessage(report.User.TelegramChatID, fmt.Sprintf(
			"*Good news! Someone found your lost item!*\n\nItem: *%s*\nFinder: %s\nMessage: _%q_\n\nLog in to the app to coordinate!",
			itemName, senderName, req.Message,
		))
	}

	return nil
}

func displayType(status string) string {
	if status == domain.ReportStatusFound {
		return "Found"
	}
	return "Lost"
}

func reportDate(r *entities.Report) string {
	if r.Date != "" {
		return r.Date
	}
	return r.CreatedAt.Format("2006-01-02")
}
