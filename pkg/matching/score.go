package matching

import (
	"CampusFind-Backend/entities"
	"strings"
	"time"
)

const (
	// Confidence a pair must exceed before it is shown, scanned, or pushed.
	// Three call sites, three thresholds: the browse page casts a wide net,
	// the background scan is stricter, and outbound pushes stricter still.
	BrowseThreshold = 30
	ScanThreshold   = 60
	NotifyThreshold = 70

	MaxConfidence = 99

	tokenWeight       = 15
	colorWeight       = 20
	locationWeight    = 25
	descriptionWeight = 5

	reportDateLayout = "2006-01-02"
)

type MatchScore struct {
	Confidence int
	Reasons    []string
}

// Score rates how likely a lost report and a found report describe the same
// item. It is pure: no I/O, no mutation, deterministic for fixed inputs.
// The second return value is false when a hard filter rejects the pair.
func Score(lost, found *entities.Report) (*MatchScore, bool) {
	if lost == nil || found == nil || lost.Item == nil || found.Item == nil {
		return nil, false
	}

	// Hard filter: categories must agree.
	if !strings.EqualFold(lost.Item.Category, found.Item.Category) {
		return nil, false
	}

	// Hard filter: an item cannot be found before it was lost. A date that
	// does not parse disables the filter for that side instead of rejecting.
	lostDate, lostOK := parseReportDate(lost.Date)
	foundDate, foundOK := parseReportDate(found.Date)
	if lostOK && foundOK && foundDate.Before(lostDate) {
		return nil, false
	}

	score := 0
	var reasons []string

	common := tokenOverlap(nameBrandTokens(lost.Item), nameBrandTokens(found.Item))
	if len(common) > 0 {
		score += len(common) * tokenWeight
		reasons = append(reasons, "Similar name/brand keywords: "+strings.Join(common, ", "))
	}

	if lost.Item.Color != "" && found.Item.Color != "" &&
		strings.EqualFold(lost.Item.Color, found.Item.Color) {
		score += colorWeight
		reasons = append(reasons, "Color match")
	}

	if lost.Location != "" && found.Location != "" {
		lostLoc := strings.ToLower(lost.Location)
		foundLoc := strings.ToLower(found.Location)
		if strings.Contains(lostLoc, foundLoc) || strings.Contains(foundLoc, lostLoc) {
			score += locationWeight
			reasons = append(reasons, "Location match")
		}
	}

	if lost.Item.Description != "" && found.Item.Description != "" {
		commonDesc := tokenOverlap(
			descriptionTokens(lost.Item.Description),
			descriptionTokens(found.Item.Description),
		)
		score += len(commonDesc) * descriptionWeight
	}

	confidence := score
	if confidence > MaxConfidence {
		confidence = MaxConfidence
	}

	return &MatchScore{Confidence: confidence, Reasons: reasons}, true
}

func parseReportDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(reportDateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func nameBrandTokens(item *entities.Item) []string {
	return strings.Fields(strings.ToLower(item.Name + " " + item.Brand))
}

// descriptionTokens ignores short words so filler like "the" and "with"
// does not inflate the description signal.
func descriptionTokens(description string) []string {
	tokens := strings.Fields(strings.ToLower(description))
	kept := tokens[:0]
	for _, t := range tokens {
		if len(t) > 3 {
			kept = append(kept, t)
		}
	}
	return kept
}

// tokenOverlap returns the distinct tokens present on both sides, preserving
// the order they appear on the left side.
func tokenOverlap(mine, theirs []string) []string {
	theirSet := make(map[string]struct{}, len(theirs))
	for _, t := range theirs {
		theirSet[t] = struct{}{}
	}

	var common []string
	seen := make(map[string]struct{}, len(mine))
	for _, t := range mine {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := theirSet[t]; ok {
			common = append(common, t)
		}
	}
	return common
}
