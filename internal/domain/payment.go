package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReserveInput struct {
	UserID        string
	PropertyID    string
	Date          time.Time
	Shift         Shift
	BuyerName     string
	BuyerIDNumber string
}

type ReserveResult struct {
	Booking *Booking
	Message string
}

type Availability struct {
	Slot      Slot
	Available bool
	Price     *decimal.Decimal
}

// ScreenshotInput carries either a hosted image URL or raw bytes to upload first.
type ScreenshotInput struct {
	URL      string
	Data     []byte
	Filename string
}

type ManualPaymentInput struct {
	SenderName    string
	Amount        string
	TransactionID string
	SenderPhone   string
}

// ScreenshotAnalysis is what the AI oracle extracted from an image.
type ScreenshotAnalysis struct {
	IsPaymentScreenshot bool             `json:"is_payment_screenshot"`
	Confidence          float64          `json:"confidence"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	TransactionID       string           `json:"transaction_id,omitempty"`
	SenderName          string           `json:"sender_name,omitempty"`
}

type SubmissionResult struct {
	Booking          *Booking
	AdminDelivery    Delivery
	CustomerDelivery Delivery
}

type VerifyResult struct {
	Booking          *Booking
	AlreadyConfirmed bool
	CustomerDelivery Delivery
}

type RejectResult struct {
	Booking          *Booking
	CustomerDelivery Delivery
}
