package matching

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMatchingRepository struct {
	reports []*entities.Report
}

func (f *fakeMatchingRepository) GetReportWithItem(_ context.Context, id string) (*entities.Report, error) {
	for _, r := range f.reports {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMatchingRepository) GetReportsByStatus(_ context.Context, status string) ([]*entities.Report, error) {
	var out []*entities.Report
	for _, r := range f.reports {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

type capturedNotification struct {
	userID  uuid.UUID
	message string
	kind    string
	link    string
}

type fakeNotificationService struct {
	sent []capturedNotification
}

func (f *fakeNotificationService) Notify(_ context.Context, userID uuid.UUID, message, notificationType, link string) error {
	f.sent = append(f.sent, capturedNotification{userID: userID, message: message, kind: notificationType, link: link})
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

func ownedReport(status, location, date string, item *entities.Item, chatID string) *entities.Report {
	owner := &entities.User{ID: uuid.New(), Name: "Owner", TelegramChatID: chatID}
	return &entities.Report{
		ID:       uuid.New(),
		UserID:   owner.ID,
		ItemID:   item.ID,
		Status:   status,
		Location: location,
		Date:     date,
		Item:     item,
		User:     owner,
	}
}

// matchFixture builds one lost report and a spread of found reports around
// the scan and notify thresholds.
func matchFixture() (*fakeMatchingRepository, *entities.Report, *entities.Report, *entities.Report) {
	lost := ownedReport(domain.ReportStatusLost, "Main Library", "2024-05-01",
		testItem("iPhone 13", "electronics", "Apple", "Black", ""), "")

	// 3 tokens + color + location: 45+20+25 = 90, above every threshold.
	strong := ownedReport(domain.ReportStatusFound, "Library", "2024-05-03",
		testItem("iPhone 13 Pro", "electronics", "Apple", "Black", ""), "777001")

	// 3 tokens + color: 45+20 = 65, passes the scan but not the push.
	middling := ownedReport(domain.ReportStatusFound, "Gym", "2024-05-02",
		testItem("iPhone 13", "electronics", "Apple", "Black", ""), "")

	// 1 token + color: 15+20 = 35, browse only.
	weak := ownedReport(domain.ReportStatusFound, "Cafeteria", "2024-05-02",
		testItem("iPhone", "electronics", "", "Black", ""), "")

	// Wrong category, hard-filtered out everywhere.
	offCategory := ownedReport(domain.ReportStatusFound, "Main Library", "2024-05-02",
		testItem("iPhone 13", "accessories", "Apple", "Black", ""), "")

	// Found before the item was lost, hard-filtered out everywhere.
	tooEarly := ownedReport(domain.ReportStatusFound, "Main Library", "2024-04-20",
		testItem("iPhone 13", "electronics", "Apple", "Black", ""), "")

	repo := &fakeMatchingRepository{
		reports: []*entities.Report{lost, strong, middling, weak, offCategory, tooEarly},
	}
	return repo, lost, strong, middling
}

func TestFindMatchesForReport(t *testing.T) {
	repo, lost, strong, middling := matchFixture()
	service := NewMatchingService(repo, &fakeNotificationService{}, &fakeTelegramService{})

	matches, err := service.FindMatchesForReport(context.Background(), lost.ID.String())
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, strong.ID.String(), matches[0].Found.ReportID)
	assert.Equal(t, 90, matches[0].Confidence)
	assert.Equal(t, middling.ID.String(), matches[1].Found.ReportID)
	assert.Equal(t, 65, matches[1].Confidence)

	for _, m := range matches {
		assert.Equal(t, lost.ID.String(), m.Lost.ReportID)
		assert.Greater(t, m.Confidence, ScanThreshold)
	}
}

func TestFindMatchesForReportIsRepeatable(t *testing.T) {
	repo, lost, _, _ := matchFixture()
	service := NewMatchingService(repo, &fakeNotificationService{}, &fakeTelegramService{})

	first, err := service.FindMatchesForReport(context.Background(), lost.ID.String())
	require.NoError(t, err)
	second, err := service.FindMatchesForReport(context.Background(), lost.ID.String())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFindMatchesFromFoundSide(t *testing.T) {
	repo, lost, strong, _ := matchFixture()
	service := NewMatchingService(repo, &fakeNotificationService{}, &fakeTelegramService{})

	matches, err := service.FindMatchesForReport(context.Background(), strong.ID.String())
	require.NoError(t, err)
	require.Len(t, matches, 1)

	// Roles stay oriented even when the found report triggers the scan.
	assert.Equal(t, lost.ID.String(), matches[0].Lost.ReportID)
	assert.Equal(t, strong.ID.String(), matches[0].Found.ReportID)
	assert.Equal(t, 90, matches[0].Confidence)
}

func TestFindMatchesExcludesExactThreshold(t *testing.T) {
	lost := ownedReport(domain.ReportStatusLost, "Dorm A", "2024-05-01",
		testItem("blue hydro flask bottle", "bottles", "", "", ""), "")
	// 4 tokens and nothing else: exactly 60.
	atThreshold := ownedReport(domain.ReportStatusFound, "Dorm B", "2024-05-02",
		testItem("blue hydro flask bottle", "bottles", "", "", ""), "")

	repo := &fakeMatchingRepository{reports: []*entities.Report{lost, atThreshold}}
	service := NewMatchingService(repo, &fakeNotificationService{}, &fakeTelegramService{})

	matches, err := service.FindMatchesForReport(context.Background(), lost.ID.String())
	require.NoError(t, err)
	assert.Empty(t, matches, "a score equal to the threshold does not pass it")
}

func TestFindMatchesReportNotFound(t *testing.T) {
	repo := &fakeMatchingRepository{}
	service := NewMatchingService(repo, &fakeNotificationService{}, &fakeTelegramService{})

	_, err := service.FindMatchesForReport(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMatchReportNotFound)
}

func TestBrowseMatches(t *testing.T) {
	repo, _, strong, middling := matchFixture()
	service := NewMatchingService(repo, &fakeNotificationService{}, &fakeTelegramService{})

	matches, err := service.BrowseMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, strong.ID.String(), matches[0].Found.ReportID)
	assert.Equal(t, middling.ID.String(), matches[1].Found.ReportID)
	assert.Equal(t, 35, matches[2].Confidence)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
}

func TestScanAndNotifyPushesStrongMatchesOnly(t *testing.T) {
	repo, lost, strong, _ := matchFixture()
	notifier := &fakeNotificationService{}
	telegram := &fakeTelegramService{}
	service := NewMatchingService(repo, notifier, telegram)

	err := service.ScanAndNotify(context.Background(), lost.ID.String())
	require.NoError(t, err)

	// The 90 match notifies the found report's owner; the 65 match stays quiet.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, strong.UserID, notifier.sent[0].userID)
	assert.Equal(t, domain.NotificationTypeMatch, notifier.sent[0].kind)
	assert.Contains(t, notifier.sent[0].message, "90%")

	// The strong match's owner has telegram linked.
	require.Len(t, telegram.sent, 1)
	assert.Contains(t, telegram.sent[0], "90%")
}

func TestDispatcherRunsScan(t *testing.T) {
	repo, lost, _, _ := matchFixture()
	notifier := &fakeNotificationService{}
	service := NewMatchingService(repo, notifier, &fakeTelegramService{})

	dispatcher := NewMatchDispatcher(service, 4)
	dispatcher.DispatchScan(lost.ID.String())
	dispatcher.Close()

	assert.Len(t, notifier.sent, 1)
}

func TestSyncDispatcherRunsInline(t *testing.T) {
	repo, lost, _, _ := matchFixture()
	notifier := &fakeNotificationService{}
	service := NewMatchingService(repo, notifier, &fakeTelegramService{})

	dispatcher := NewSyncMatchDispatcher(service)
	dispatcher.DispatchScan(lost.ID.String())

	assert.Len(t, notifier.sent, 1)
}
