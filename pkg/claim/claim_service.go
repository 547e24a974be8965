package claim

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"CampusFind-Backend/pkg/notification"
	"CampusFind-Backend/pkg/report"
	"CampusFind-Backend/pkg/telegram"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ClaimService interface {
		SubmitClaim(ctx context.Context, req domain.SubmitClaimRequest, claimerID, claimerName string) (*domain.Claim, error)
		DecideClaim(ctx context.Context, req domain.DecideClaimRequest, deciderID string) error
		GetUserClaims(ctx context.Context, claimerID string) ([]*domain.Claim, error)
		GetIncomingClaims(ctx context.Context, ownerID string) ([]*domain.Claim, error)
	}

	claimService struct {
		claimRepository     ClaimRepository
		reportRepository    report.ReportRepository
		notificationService notification.NotificationService
		telegramService     telegram.TelegramService
	}
)

func NewClaimService(
	claimRepository ClaimRepository,
	reportRepository report.ReportRepository,
	notificationService notification.NotificationService,
	telegramService telegram.TelegramService,
) ClaimService {
	return &claimService{
		claimRepository:     claimRepository,
		reportRepository:    reportRepository,
		notificationService: notificationService,
		telegramService:     telegramService,
	}
}

func (s *claimService) SubmitClaim(ctx context.Context, req domain.SubmitClaimRequest, claimerID, claimerName string) (*domain.Claim, error) {
	foundReport, err := s.reportRepository.GetReportByID(ctx, req.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	if foundReport.Status != domain.ReportStatusFound {
		return nil, domain.ErrReportNotClaimable
	}

	if foundReport.UserID.String() == claimerID {
		return nil, domain.ErrSelfClaim
	}

	claimerUUID, err := uuid.Parse(claimerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	claim := &entities.Claim{
		ID:               uuid.New(),
		FoundReportID:    foundReport.ID,
		ClaimerID:        claimerUUID,
		ProofDescription: req.ProofDescription,
		Status:           domain.ClaimStatusPending,
	}
	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}

	s.notifyNewClaim(ctx, foundReport, claimerName, req.ProofDescription)

	return &domain.Claim{
		ID:               claim.ID.String(),
		ReportID:         foundReport.ID.String(),
		ItemName:         itemName(foundReport),
		ClaimerID:        claimerID,
		ClaimerName:      claimerName,
		ProofDescription: req.ProofDescription,
		Status:           domain.ClaimStatusPending,
		CreatedAt:        time.Now(),
	}, nil
}

func (s *claimService) DecideClaim(ctx context.Context, req domain.DecideClaimRequest, deciderID string) error {
	claim, err := s.claimRepository.GetClaimByID(ctx, req.ClaimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrClaimNotFound
		}
		return err
	}

	if !canDecideClaim(deciderID, claim.FoundReport) {
		return domain.ErrUnauthorizedClaimAccess
	}

	if claim.Status != domain.ClaimStatusPending {
		return domain.ErrClaimAlreadyProcessed
	}

	now := time.Now()
	switch req.Decision {
	case domain.ClaimDecisionApproved:
		err = s.claimRepository.ApproveClaim(
			ctx,
			claim.ID.String(),
			claim.FoundReportID.String(),
			claim.FoundReport.UserID.String(),
			now,
		)
		if err != nil {
			if errors.Is(err, domain.ErrClaimNotFound) || errors.Is(err, domain.ErrClaimAlreadyProcessed) {
				return err
			}
			return fmt.Errorf("%w: %v", domain.ErrClaimTransaction, err)
		}
	case domain.ClaimDecisionRejected:
		if err := s.claimRepository.RejectClaim(ctx, claim.ID.String(), now); err != nil {
			return err
		}
	default:
		return domain.ErrInvalidClaimDecision
	}

	s.notifyClaimOutcome(ctx, claim, req.Decision)
	return nil
}

func (s *claimService) GetUserClaims(ctx context.Context, claimerID string) ([]*domain.Claim, error) {
	claims, err := s.claimRepository.GetUserClaims(ctx, claimerID)
	if err != nil {
		return nil, err
	}
	return toDomainClaims(claims), nil
}

func (s *claimService) GetIncomingClaims(ctx context.Context, ownerID string) ([]*domain.Claim, error) {
	claims, err := s.claimRepository.GetIncomingClaims(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toDomainClaims(claims), nil
}

// canDecideClaim is the single authority check for claim decisions: only
// the owner of the found report may decide.
func canDecideClaim(actorID string, foundReport *entities.Report) bool {
	return foundReport != nil && foundReport.UserID.String() == actorID
}

func (s *claimService) notifyNewClaim(ctx context.Context, foundReport *entities.Report, claimerName, proof string) {
	message := fmt.Sprintf("New Claim: %s claimed %q", claimerName, itemName(foundReport))
	if err := s.notificationService.Notify(ctx, foundReport.UserID, message, domain.NotificationTypeClaim, "/profile"); err != nil {
		log.Printf("claim notification for report %s failed: %v", foundReport.ID, err)
	}

	if foundReport.User != nil && foundReport.User.TelegramChatID != "" {
		s.telegramService.SendMessage(foundReport.User.TelegramChatID, fmt.Sprintf(
			"*New Claim on your Found Item!*\n\nItem: *%s*\nClaimed by: %s\nProof: _%s_\n\nCheck your profile to approve or reject.",
			itemName(foundReport), claimerName, proof,
		))
	}
}

// notifyClaimOutcome tells the decided claim's claimer what happened.
// Claimants rejected by the approval cascade are not notified.
func (s *claimService) notifyClaimOutcome(ctx context.Context, claim *entities.Claim, decision string) {
	link := "/profile"
	var message string
	if claim.FoundReport != nil {
		link = "/item/" + claim.FoundReport.ItemID.String()
	}

	if decision == domain.ClaimDecisionApproved {
		message = fmt.Sprintf("Claim Approved! Only you can now pick up %q.", itemName(claim.FoundReport))
	} else {
		message = fmt.Sprintf("Claim Rejected for %q. The reporter did not accept your proof.", itemName(claim.FoundReport))
	}

	if err := s.notificationService.Notify(ctx, claim.ClaimerID, message, domain.NotificationTypeSystem, link); err != nil {
		log.Printf("claim outcome notification for claim %s failed: %v", claim.ID, err)
	}

	if claim.Claimer != nil && claim.Claimer.TelegramChatID != "" {
		s.telegramService.SendMessage(claim.Claimer.TelegramChatID, message)
	}
}

func itemName(report *entities.Report) string {
	if report != nil && report.Item != nil {
		return report.Item.Name
	}
	return "the item"
}

func toDomainClaims(claims []*entities.Claim) []*domain.Claim {
	result := make([]*domain.Claim, 0, len(claims))
	for _, c := range claims {
		entry := &domain.Claim{
			ID:               c.ID.String(),
			ReportID:         c.FoundReportID.String(),
			ClaimerID:        c.ClaimerID.String(),
			ProofDescription: c.ProofDescription,
			Status:           c.Status,
			CreatedAt:        c.CreatedAt,
			ProcessedAt:      c.ProcessedAt,
		}
		if c.FoundReport != nil && c.FoundReport.Item != nil {
			entry.ItemName = c.FoundReport.Item.Name
			entry.ItemImage = c.FoundReport.Item.ImagePath
		}
		if c.Claimer != nil {
			entry.ClaimerName = c.Claimer.Name
			entry.ClaimerEmail = c.Claimer.Email
		}
		result = append(result, entry)
	}
	return result
}
