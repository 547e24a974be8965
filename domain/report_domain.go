package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	ReportStatusLost     = "lost"
	ReportStatusFound    = "found"
	ReportStatusClaimed  = "claimed"
	ReportStatusReturned = "returned"
)

var (
	MessageSuccessCreateReport      = "report submitted successfully"
	MessageSuccessGetReports        = "reports retrieved successfully"
	MessageSuccessSearchItems       = "items retrieved successfully"
	MessageSuccessGetItemDetails    = "item details retrieved successfully"
	MessageSuccessUploadImage       = "image uploaded successfully"
	MessageSuccessNotifyOwner       = "owner notified, they will contact you if needed"
	MessageSuccessGetIncomingClaims = "incoming claims retrieved successfully"

	MessageFailedCreateReport      = "failed to submit report"
	MessageFailedGetReports        = "failed to retrieve reports"
	MessageFailedSearchItems       = "failed to search items"
	MessageFailedGetItemDetails    = "failed to retrieve item details"
	MessageFailedUploadImage       = "failed to upload image"
	MessageFailedNotifyOwner       = "failed to notify owner"
	MessageFailedGetIncomingClaims = "failed to retrieve incoming claims"

	ErrReportNotFound        = errors.New("report not found")
	ErrItemNotFound          = errors.New("item not found")
	ErrInvalidReportStatus   = errors.New("invalid report status")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrSelfNotify            = errors.New("cannot notify yourself")
)

type (
	CreateReportRequest struct {
		ItemName    string                `json:"item_name" form:"item_name" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		Brand       string                `json:"brand" form:"brand" validate:"omitempty"`
		Color       string                `json:"color" form:"color" validate:"omitempty"`
		Location    string                `json:"location" form:"location" validate:"required"`
		Date        string                `json:"date" form:"date" validate:"required"`
		Status      string                `json:"status" form:"status" validate:"required,oneof=lost found"`
		Image       *multipart.FileHeader `json:"image" form:"image"`
	}

	Report struct {
		ID        string    `json:"id"`
		ItemID    string    `json:"item_id"`
		Name      string    `json:"name"`
		Category  string    `json:"category"`
		Type      string    `json:"type"` // Lost or Found, for display
		Status    string    `json:"status"`
		Location  string    `json:"location"`
		Date      string    `json:"date"`
		ImagePath string    `json:"image_path,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	SearchItemsRequest struct {
		Query string `json:"query" validate:"omitempty"`
		Type  string `json:"type" validate:"omitempty,oneof=lost found"`
	}

	SearchItem struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Type        string `json:"type"`
		Status      string `json:"status"`
		Date        string `json:"date"`
		Location    string `json:"location"`
		Description string `json:"description,omitempty"`
		ImagePath   string `json:"image_path,omitempty"`
	}

	ItemDetails struct {
		ID          string         `json:"id"`
		Name        string         `json:"name"`
		Category    string         `json:"category"`
		Description string         `json:"description,omitempty"`
		Brand       string         `json:"brand,omitempty"`
		Color       string         `json:"color,omitempty"`
		ImagePath   string         `json:"image_path,omitempty"`
		Report      *ReportSummary `json:"report,omitempty"`
		Claims      []*Claim       `json:"claims,omitempty"`
	}

	ReportSummary struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		Location      string `json:"location"`
		Date          string `json:"date"`
		ReporterID    string `json:"reporter_id"`
		ReporterName  string `json:"reporter_name"`
		ReporterEmail string `json:"reporter_email,omitempty"`
	}

	NotifyOwnerRequest struct {
		ItemID  string `json:"item_id" validate:"required,uuid"`
		Message string `json:"message" validate:"required"`
	}
)
