package claim

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeClaimRepository struct {
	claims     map[string]*entities.Claim
	reports    map[string]*entities.Report
	users      map[string]*entities.User
	approveErr error
}

func newFakeClaimRepository() *fakeClaimRepository {
	return &fakeClaimRepository{
		claims:  make(map[string]*entities.Claim),
		reports: make(map[string]*entities.Report),
		users:   make(map[string]*entities.User),
	}
}

func (f *fakeClaimRepository) CreateClaim(_ context.Context, claim *entities.Claim) error {
	f.claims[claim.ID.String()] = claim
	return nil
}

func (f *fakeClaimRepository) GetClaimByID(_ context.Context, id string) (*entities.Claim, error) {
	claim, ok := f.claims[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return claim, nil
}

func (f *fakeClaimRepository) GetUserClaims(_ context.Context, claimerID string) ([]*entities.Claim, error) {
	var out []*entities.Claim
	for _, c := range f.claims {
		if c.ClaimerID.String() == claimerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClaimRepository) GetIncomingClaims(_ context.Context, ownerID string) ([]*entities.Claim, error) {
	var out []*entities.Claim
	for _, c := range f.claims {
		if c.FoundReport != nil && c.FoundReport.UserID.String() == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ApproveClaim mirrors the production transaction: either every effect
// lands or none do.
func (f *fakeClaimRepository) ApproveClaim(_ context.Context, claimID, reportID, ownerID string, processedAt time.Time) error {
	if f.approveErr != nil {
		return f.approveErr
	}

	claim, ok := f.claims[claimID]
	if !ok {
		return domain.ErrClaimNotFound
	}
	if claim.Status != domain.ClaimStatusPending {
		return domain.ErrClaimAlreadyProcessed
	}

	claim.Status = domain.ClaimStatusApproved
	claim.ProcessedAt = &processedAt

	if report, ok := f.reports[reportID]; ok {
		report.Status = domain.ReportStatusClaimed
	}
	if owner, ok := f.users[ownerID]; ok {
		owner.FinderPoints += domain.FinderPointsAward
	}
	for _, other := range f.claims {
		if other.FoundReportID.String() == reportID &&
			other.ID.String() != claimID &&
			other.Status == domain.ClaimStatusPending {
			other.Status = domain.ClaimStatusRejected
			other.ProcessedAt = &processedAt
		}
	}
	return nil
}

func (f *fakeClaimRepository) RejectClaim(_ context.Context, claimID string, processedAt time.Time) error {
	claim, ok := f.claims[claimID]
	if !ok || claim.Status != domain.ClaimStatusPending {
		return nil
	}
	claim.Status = domain.ClaimStatusRejected
	claim.ProcessedAt = &processedAt
	return nil
}

type fakeReportRepository struct {
	reports map[string]*entities.Report
}

func (f *fakeReportRepository) CreateItem(_ context.Context, _ *entities.Item) error { return nil }

func (f *fakeReportRepository) CreateReport(_ context.Context, _ *entities.Report) error { return nil }

func (f *fakeReportRepository) GetReportByID(_ context.Context, id string) (*entities.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (f *fakeReportRepository) GetUserReports(_ context.Context, _ string) ([]*entities.Report, error) {
	return nil, nil
}

func (f *fakeReportRepository) SearchReports(_ context.Context, _, _ string) ([]*entities.Report, error) {
	return nil, nil
}

func (f *fakeReportRepository) GetItemWithReports(_ context.Context, _ string) (*entities.Item, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportRepository) GetLatestReportByItem(_ context.Context, _ string) (*entities.Report, error) {
	return nil, gorm.ErrRecordNotFound
}

type capturedNotification struct {
	userID  uuid.UUID
	message string
	kind    string
}

type fakeNotificationService struct {
	sent []capturedNotification
}

func (f *fakeNotificationService) Notify(_ context.Context, userID uuid.UUID, message, notificationType, _ string) error {
	f.sent = append(f.sent, capturedNotification{userID: userID, message: message, kind: notificationType})
	return nil
}

func (f *fakeNotificationService) GetUserNotifications(_ context.Context, _ string) ([]*domain.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationService) MarkRead(_ context.Context, _, _ string) error {
	return nil
}

type fakeTelegramService struct {
	sent []string
}

func (f *fakeTelegramService) SendMessage(_ string, text string) bool {
	f.sent = append(f.sent, text)
	return true
}

type claimFixture struct {
	service  ClaimService
	repo     *fakeClaimRepository
	notifier *fakeNotificationService

	finder      *entities.User
	claimerA    *entities.User
	claimerB    *entities.User
	foundReport *entities.Report
}

func newClaimFixture() *claimFixture {
	finder := &entities.User{ID: uuid.New(), Name: "Finn Finder"}
	claimerA := &entities.User{ID: uuid.New(), Name: "Alice"}
	claimerB := &entities.User{ID: uuid.New(), Name: "Bob"}

	item := &entities.Item{ID: uuid.New(), Name: "Blue Backpack", Category: "bags"}
	foundReport := &entities.Report{
		ID:       uuid.New(),
		UserID:   finder.ID,
		ItemID:   item.ID,
		Status:   domain.ReportStatusFound,
		Location: "Student Center",
		Date:     "2024-05-02",
		Item:     item,
		User:     finder,
	}

	repo := newFakeClaimRepository()
	repo.reports[foundReport.ID.String()] = foundReport
	repo.users[finder.ID.String()] = finder

	reportRepo := &fakeReportRepository{
		reports: map[string]*entities.Report{foundReport.ID.String(): foundReport},
	}
	notifier := &fakeNotificationService{}
	service := NewClaimService(repo, reportRepo, notifier, &fakeTelegramService{})

	return &claimFixture{
		service:     service,
		repo:        repo,
		notifier:    notifier,
		finder:      finder,
		claimerA:    claimerA,
		claimerB:    claimerB,
		foundReport: foundReport,
	}
}

func (fx *claimFixture) pendingClaim(claimer *entities.User) *entities.Claim {
	claim := &entities.Claim{
		ID:               uuid.New(),
		FoundReportID:    fx.foundReport.ID,
		ClaimerID:        claimer.ID,
		ProofDescription: "it has my initials on the strap",
		Status:           domain.ClaimStatusPending,
		FoundReport:      fx.foundReport,
		Claimer:          claimer,
	}
	fx.repo.claims[claim.ID.String()] = claim
	return claim
}

func TestSubmitClaim(t *testing.T) {
	fx := newClaimFixture()

	req := domain.SubmitClaimRequest{
		ReportID:         fx.foundReport.ID.String(),
		ProofDescription: "it has my initials on the strap",
	}
	claim, err := fx.service.SubmitClaim(context.Background(), req, fx.claimerA.ID.String(), fx.claimerA.Name)
	require.NoError(t, err)

	assert.Equal(t, domain.ClaimStatusPending, claim.Status)
	assert.Equal(t, fx.foundReport.ID.String(), claim.ReportID)

	stored, ok := fx.repo.claims[claim.ID]
	require.True(t, ok)
	assert.Equal(t, domain.ClaimStatusPending, stored.Status)

	// The report owner hears about the new claim.
	require.Len(t, fx.notifier.sent, 1)
	assert.Equal(t, fx.finder.ID, fx.notifier.sent[0].userID)
	assert.Equal(t, domain.NotificationTypeClaim, fx.notifier.sent[0].kind)
}

func TestSubmitClaimReportNotFound(t *testing.T) {
	fx := newClaimFixture()

	req := domain.SubmitClaimRequest{ReportID: uuid.NewString(), ProofDescription: "mine"}
	_, err := fx.service.SubmitClaim(context.Background(), req, fx.claimerA.ID.String(), fx.claimerA.Name)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestSubmitClaimOnLostReport(t *testing.T) {
	fx := newClaimFixture()
	fx.foundReport.Status = domain.ReportStatusLost

	req := domain.SubmitClaimRequest{ReportID: fx.foundReport.ID.String(), ProofDescription: "mine"}
	_, err := fx.service.SubmitClaim(context.Background(), req, fx.claimerA.ID.String(), fx.claimerA.Name)
	assert.ErrorIs(t, err, domain.ErrReportNotClaimable)
}

func TestSubmitClaimOwnReport(t *testing.T) {
	fx := newClaimFixture()

	req := domain.SubmitClaimRequest{ReportID: fx.foundReport.ID.String(), ProofDescription: "mine"}
	_, err := fx.service.SubmitClaim(context.Background(), req, fx.finder.ID.String(), fx.finder.Name)
	assert.ErrorIs(t, err, domain.ErrSelfClaim)
	assert.Empty(t, fx.repo.claims, "no claim row is written for a self claim")
}

func TestDecideClaimApproveCascades(t *testing.T) {
	fx := newClaimFixture()
	winner := fx.pendingClaim(fx.claimerA)
	loser := fx.pendingClaim(fx.claimerB)

	req := domain.DecideClaimRequest{ClaimID: winner.ID.String(), Decision: domain.ClaimDecisionApproved}
	err := fx.service.DecideClaim(context.Background(), req, fx.finder.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.ClaimStatusApproved, winner.Status)
	require.NotNil(t, winner.ProcessedAt)

	assert.Equal(t, domain.ClaimStatusRejected, loser.Status)
	require.NotNil(t, loser.ProcessedAt)

	assert.Equal(t, domain.ReportStatusClaimed, fx.foundReport.Status)
	assert.Equal(t, domain.FinderPointsAward, fx.finder.FinderPoints)

	// Only the winning claimer is told. The cascade losers are not.
	require.Len(t, fx.notifier.sent, 1)
	assert.Equal(t, fx.claimerA.ID, fx.notifier.sent[0].userID)
	assert.Contains(t, fx.notifier.sent[0].message, "Approved")
}

func TestDecideClaimReject(t *testing.T) {
	fx := newClaimFixture()
	rejected := fx.pendingClaim(fx.claimerA)
	untouched := fx.pendingClaim(fx.claimerB)

	req := domain.DecideClaimRequest{ClaimID: rejected.ID.String(), Decision: domain.ClaimDecisionRejected}
	err := fx.service.DecideClaim(context.Background(), req, fx.finder.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.ClaimStatusRejected, rejected.Status)
	require.NotNil(t, rejected.ProcessedAt)

	// Rejecting one claim leaves everything else alone.
	assert.Equal(t, domain.ClaimStatusPending, untouched.Status)
	assert.Equal(t, domain.ReportStatusFound, fx.foundReport.Status)
	assert.Zero(t, fx.finder.FinderPoints)

	require.Len(t, fx.notifier.sent, 1)
	assert.Equal(t, fx.claimerA.ID, fx.notifier.sent[0].userID)
	assert.Contains(t, fx.notifier.sent[0].message, "Rejected")
}

func TestDecideClaimUnauthorized(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.pendingClaim(fx.claimerA)

	req := domain.DecideClaimRequest{ClaimID: claim.ID.String(), Decision: domain.ClaimDecisionApproved}

	err := fx.service.DecideClaim(context.Background(), req, fx.claimerB.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedClaimAccess)

	err = fx.service.DecideClaim(context.Background(), req, fx.claimerA.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedClaimAccess, "the claimer cannot approve their own claim")

	assert.Equal(t, domain.ClaimStatusPending, claim.Status)
	assert.Equal(t, domain.ReportStatusFound, fx.foundReport.Status)
	assert.Zero(t, fx.finder.FinderPoints)
	assert.Empty(t, fx.notifier.sent)
}

func TestDecideClaimNotFound(t *testing.T) {
	fx := newClaimFixture()

	req := domain.DecideClaimRequest{ClaimID: uuid.NewString(), Decision: domain.ClaimDecisionApproved}
	err := fx.service.DecideClaim(context.Background(), req, fx.finder.ID.String())
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}

func TestDecideClaimAlreadyProcessed(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.pendingClaim(fx.claimerA)
	claim.Status = domain.ClaimStatusApproved

	req := domain.DecideClaimRequest{ClaimID: claim.ID.String(), Decision: domain.ClaimDecisionRejected}
	err := fx.service.DecideClaim(context.Background(), req, fx.finder.ID.String())
	assert.ErrorIs(t, err, domain.ErrClaimAlreadyProcessed)
}

func TestDecideClaimTransactionFailure(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.pendingClaim(fx.claimerA)
	fx.repo.approveErr = errors.New("deadlock detected")

	req := domain.DecideClaimRequest{ClaimID: claim.ID.String(), Decision: domain.ClaimDecisionApproved}
	err := fx.service.DecideClaim(context.Background(), req, fx.finder.ID.String())
	assert.ErrorIs(t, err, domain.ErrClaimTransaction)

	// Nothing moved: the failed approval leaves every record as it was.
	assert.Equal(t, domain.ClaimStatusPending, claim.Status)
	assert.Equal(t, domain.ReportStatusFound, fx.foundReport.Status)
	assert.Zero(t, fx.finder.FinderPoints)
	assert.Empty(t, fx.notifier.sent)
}

func TestDecideClaimInvalidDecision(t *testing.T) {
	fx := newClaimFixture()
	claim := fx.pendingClaim(fx.claimerA)

	req := domain.DecideClaimRequest{ClaimID: claim.ID.String(), Decision: "maybe"}
	err := fx.service.DecideClaim(context.Background(), req, fx.finder.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidClaimDecision)
	assert.Equal(t, domain.ClaimStatusPending, claim.Status)
}

func TestGetIncomingClaims(t *testing.T) {
	fx := newClaimFixture()
	fx.pendingClaim(fx.claimerA)
	fx.pendingClaim(fx.claimerB)

	claims, err := fx.service.GetIncomingClaims(context.Background(), fx.finder.ID.String())
	require.NoError(t, err)
	assert.Len(t, claims, 2)

	none, err := fx.service.GetIncomingClaims(context.Background(), fx.claimerA.ID.String())
	require.NoError(t, err)
	assert.Empty(t, none)
}
