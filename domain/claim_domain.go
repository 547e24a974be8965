package domain

import (
	"errors"
	"time"
)

const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"

	ClaimDecisionApproved = "approved"
	ClaimDecisionRejected = "rejected"

	// FinderPointsAward is credited to the finder when one of their
	// found reports resolves through an approved claim.
	FinderPointsAward = 50
)

var (
	MessageSuccessSubmitClaim = "claim submitted successfully, the finder will review your proof"
	MessageSuccessDecideClaim = "claim decision recorded successfully"
	MessageSuccessGetClaims   = "claims retrieved successfully"

	MessageFailedSubmitClaim = "failed to submit claim"
	MessageFailedDecideClaim = "failed to decide claim"
	MessageFailedGetClaims   = "failed to retrieve claims"

	ErrClaimNotFound           = errors.New("claim not found")
	ErrSelfClaim               = errors.New("cannot claim an item you reported as found")
	ErrUnauthorizedClaimAccess = errors.New("not authorized to manage this claim")
	ErrClaimAlreadyProcessed   = errors.New("claim has already been processed")
	ErrReportNotClaimable      = errors.New("only found reports can be claimed")
	ErrInvalidClaimDecision    = errors.New("invalid claim decision")
	ErrClaimTransaction        = errors.New("claim decision could not be committed")
)

type (
	SubmitClaimRequest struct {
		ReportID         string `json:"report_id" validate:"required,uuid"`
		ProofDescription string `json:"proof_description" validate:"required"`
	}

	DecideClaimRequest struct {
		ClaimID  string `json:"claim_id" validate:"required,uuid"`
		Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	}

	Claim struct {
		ID               string     `json:"id"`
		ReportID         string     `json:"report_id"`
		ItemName         string     `json:"item_name,omitempty"`
		ItemImage        string     `json:"item_image,omitempty"`
		ClaimerID        string     `json:"claimer_id"`
		ClaimerName      string     `json:"claimer_name,omitempty"`
		ClaimerEmail     string     `json:"claimer_email,omitempty"`
		ProofDescription string     `json:"proof_description"`
		Status           string     `json:"status"`
		CreatedAt        time.Time  `json:"created_at"`
		ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	}
)
