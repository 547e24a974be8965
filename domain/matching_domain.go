package domain

import (
	"errors"
)

var (
	MessageSuccessGetMatches = "potential matches retrieved successfully"

	MessageFailedGetMatches = "failed to retrieve potential matches"

	ErrMatchReportNotFound = errors.New("report to match against not found")
)

type (
	MatchedReport struct {
		ReportID string `json:"report_id"`
		ItemID   string `json:"item_id"`
		Name     string `json:"name"`
		Brand    string `json:"brand,omitempty"`
		Color    string `json:"color,omitempty"`
		Location string `json:"location"`
		Date     string `json:"date"`
	}

	MatchCandidate struct {
		Lost       MatchedReport `json:"lost"`
		Found      MatchedReport `json:"found"`
		Confidence int           `json:"confidence"`
		Reasons    []string      `json:"reasons"`
	}
)
