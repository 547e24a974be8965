package matching

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(status, location, date string, item *entities.Item) *entities.Report {
	return &entities.Report{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		ItemID:   item.ID,
		Status:   status,
		Location: location,
		Date:     date,
		Item:     item,
	}
}

func testItem(name, category, brand, color, description string) *entities.Item {
	return &entities.Item{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		Brand:       brand,
		Color:       color,
		Description: description,
	}
}

func TestScoreCategoryMismatch(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Library", "2024-05-01",
		testItem("iPhone 13", "electronics", "", "Black", ""))
	found := testReport(domain.ReportStatusFound, "Library", "2024-05-02",
		testItem("iPhone 13", "accessories", "", "Black", ""))

	_, ok := Score(lost, found)
	assert.False(t, ok)
}

func TestScoreCategoryCaseInsensitive(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Library", "2024-05-01",
		testItem("iPhone 13", "Electronics", "", "", ""))
	found := testReport(domain.ReportStatusFound, "Library", "2024-05-02",
		testItem("iPhone 13", "electronics", "", "", ""))

	_, ok := Score(lost, found)
	assert.True(t, ok)
}

func TestScoreDateFilter(t *testing.T) {
	item := func() *entities.Item {
		return testItem("Black Wallet", "accessories", "", "", "")
	}

	lost := testReport(domain.ReportStatusLost, "Gym", "2024-05-10", item())

	foundBefore := testReport(domain.ReportStatusFound, "Gym", "2024-05-09", item())
	_, ok := Score(lost, foundBefore)
	assert.False(t, ok, "item found before it was lost must be rejected")

	foundSameDay := testReport(domain.ReportStatusFound, "Gym", "2024-05-10", item())
	_, ok = Score(lost, foundSameDay)
	assert.True(t, ok)

	foundAfter := testReport(domain.ReportStatusFound, "Gym", "2024-05-11", item())
	_, ok = Score(lost, foundAfter)
	assert.True(t, ok)
}

func TestScoreUnparseableDateSkipsFilter(t *testing.T) {
	item := func() *entities.Item {
		return testItem("Black Wallet", "accessories", "", "", "")
	}

	lost := testReport(domain.ReportStatusLost, "Gym", "sometime last week", item())
	found := testReport(domain.ReportStatusFound, "Gym", "2020-01-01", item())

	_, ok := Score(lost, found)
	assert.True(t, ok, "an unparseable date disables the date filter instead of rejecting")

	lost.Date = "2024-05-10"
	found.Date = ""
	_, ok = Score(lost, found)
	assert.True(t, ok)
}

func TestScoreNameBrandTokens(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Dorm A", "2024-05-01",
		testItem("iPhone 13", "electronics", "Apple", "", ""))
	found := testReport(domain.ReportStatusFound, "Dorm B", "2024-05-02",
		testItem("iPhone 13 Pro", "electronics", "Apple", "", ""))

	result, ok := Score(lost, found)
	require.True(t, ok)
	assert.Equal(t, 45, result.Confidence)
	require.Len(t, result.Reasons, 1)
	assert.Equal(t, "Similar name/brand keywords: iphone, 13, apple", result.Reasons[0])
}

func TestScoreRepeatedTokensCountOnce(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Dorm A", "2024-05-01",
		testItem("wallet wallet wallet", "accessories", "", "", ""))
	found := testReport(domain.ReportStatusFound, "Dorm B", "2024-05-02",
		testItem("wallet", "accessories", "", "", ""))

	result, ok := Score(lost, found)
	require.True(t, ok)
	assert.Equal(t, 15, result.Confidence)
}

func TestScoreColorCaseInsensitive(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Dorm A", "2024-05-01",
		testItem("Umbrella", "accessories", "", "NAVY", ""))
	found := testReport(domain.ReportStatusFound, "Dorm B", "2024-05-02",
		testItem("Parasol", "accessories", "", "navy", ""))

	result, ok := Score(lost, found)
	require.True(t, ok)
	assert.Equal(t, 20, result.Confidence)
	assert.Contains(t, result.Reasons, "Color match")
}

func TestScoreLocationSubstring(t *testing.T) {
	item := func() *entities.Item {
		return testItem("Keys", "keys", "", "", "")
	}

	lost := testReport(domain.ReportStatusLost, "Main Library", "2024-05-01", item())
	found := testReport(domain.ReportStatusFound, "library", "2024-05-02", item())

	result, ok := Score(lost, found)
	require.True(t, ok)
	assert.Equal(t, 25+15, result.Confidence, "substring match works in either direction")
	assert.Contains(t, result.Reasons, "Location match")

	elsewhere := testReport(domain.ReportStatusFound, "Cafeteria", "2024-05-02", item())
	result, ok = Score(lost, elsewhere)
	require.True(t, ok)
	assert.NotContains(t, result.Reasons, "Location match")
}

func TestScoreDescriptionOverlap(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Dorm A", "2024-05-01",
		testItem("Bag", "bags", "", "", "black leather bag zipper broken"))
	found := testReport(domain.ReportStatusFound, "Dorm B", "2024-05-02",
		testItem("Bag", "bags", "", "", "a leather bag with a zipper"))

	result, ok := Score(lost, found)
	require.True(t, ok)
	// "bag" is only three letters, so it counts for the name signal but not
	// the description signal. "leather" and "zipper" count.
	assert.Equal(t, 15+2*5, result.Confidence)
}

func TestScoreConfidenceCap(t *testing.T) {
	name := "alpha beta gamma delta epsilon zeta"
	lost := testReport(domain.ReportStatusLost, "Main Library", "2024-05-01",
		testItem(name, "misc", "", "Black", ""))
	found := testReport(domain.ReportStatusFound, "Library", "2024-05-02",
		testItem(name, "misc", "", "Black", ""))

	result, ok := Score(lost, found)
	require.True(t, ok)
	assert.Equal(t, MaxConfidence, result.Confidence)
}

func TestScoreCombinedSignals(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Library", "2024-05-01",
		testItem("iPhone 13", "electronics", "", "Black", ""))
	found := testReport(domain.ReportStatusFound, "Main Library", "2024-05-03",
		testItem("iPhone 13 Pro", "electronics", "", "Black", ""))

	result, ok := Score(lost, found)
	require.True(t, ok)
	assert.Equal(t, 2*15+20+25, result.Confidence)
	assert.Equal(t, []string{
		"Similar name/brand keywords: iphone, 13",
		"Color match",
		"Location match",
	}, result.Reasons)
}

func TestScoreNilInputs(t *testing.T) {
	lost := testReport(domain.ReportStatusLost, "Library", "2024-05-01",
		testItem("Keys", "keys", "", "", ""))

	_, ok := Score(lost, nil)
	assert.False(t, ok)

	_, ok = Score(nil, lost)
	assert.False(t, ok)

	noItem := &entities.Report{ID: uuid.New(), Status: domain.ReportStatusFound}
	_, ok = Score(lost, noItem)
	assert.False(t, ok)
}
