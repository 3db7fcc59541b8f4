package dto

import (
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type ClaimResponse struct {
	Source        string   `json:"source"`
	Amount        *string  `json:"amount,omitempty"`
	SenderName    string   `json:"sender_name,omitempty"`
	SenderPhone   string   `json:"sender_phone,omitempty"`
	TransactionID string   `json:"transaction_id,omitempty"`
	Confidence    *float64 `json:"confidence,omitempty"`
	ScreenshotURL string   `json:"screenshot_url,omitempty"`
	SubmittedAt   string   `json:"submitted_at"`
}

type BookingResponse struct {
	ID           string         `json:"id"`
	Code         string         `json:"code"`
	UserID       string         `json:"user_id"`
	PropertyID   string         `json:"property_id"`
	BookingDate  string         `json:"booking_date"`
	Shift        string         `json:"shift"`
	BuyerName    string         `json:"buyer_name"`
	TotalCost    string         `json:"total_cost"`
	Status       string         `json:"status"`
	Reason       string         `json:"reason,omitempty"`
	VerifiedBy   string         `json:"verified_by,omitempty"`
	RejectedBy   string         `json:"rejected_by,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	Claim        *ClaimResponse `json:"claim,omitempty"`
	PendingSince string         `json:"pending_since"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type ReserveResponse struct {
	Booking BookingResponse `json:"booking"`
	Message string          `json:"message"`
}

type AvailabilityResponse struct {
	PropertyID string  `json:"property_id"`
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
	Available  bool    `json:"available"`
	Price      *string `json:"price,omitempty"`
}

type DeliveryResponse struct {
	Channel   string `json:"channel"`
	Delivered bool   `json:"delivered"`
	Duplicate bool   `json:"duplicate,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type SubmissionResponse struct {
	Booking          BookingResponse  `json:"booking"`
	AdminDelivery    DeliveryResponse `json:"admin_notification"`
	CustomerDelivery DeliveryResponse `json:"customer_notification"`
}

type VerifyResponse struct {
	Booking          BookingResponse   `json:"booking"`
	AlreadyConfirmed bool              `json:"already_confirmed"`
	CustomerDelivery *DeliveryResponse `json:"customer_notification,omitempty"`
}

type RejectResponse struct {
	Booking          BookingResponse  `json:"booking"`
	CustomerDelivery DeliveryResponse `json:"customer_notification"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Sender    string `json:"sender"`
	Event     string `json:"event"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	// Expected and Provided are set for amount mismatches.
	Expected string `json:"expected,omitempty"`
	Provided string `json:"provided,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		Code:         b.Code,
		UserID:       b.UserID,
		PropertyID:   b.PropertyID,
		BookingDate:  b.BookingDate.Format(domain.DateLayout),
		Shift:        string(b.Shift),
		BuyerName:    b.BuyerName,
		TotalCost:    b.TotalCost.StringFixed(2),
		Status:       string(b.Status),
		Reason:       b.Reason,
		VerifiedBy:   b.VerifiedBy,
		RejectedBy:   b.RejectedBy,
		Notes:        b.Notes,
		PendingSince: b.PendingSince.Format(time.RFC3339),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}

	if c := b.Claim; c != nil {
		claim := &ClaimResponse{
			Source:        string(c.Source),
			SenderName:    c.SenderName,
			SenderPhone:   c.SenderPhone,
			TransactionID: c.TransactionID,
			Confidence:    c.Confidence,
			ScreenshotURL: c.ScreenshotURL,
			SubmittedAt:   c.SubmittedAt.Format(time.RFC3339),
		}
		if c.Amount != nil {
			amount := c.Amount.StringFixed(2)
			claim.Amount = &amount
		}
		resp.Claim = claim
	}

	return resp
}

func ToBookingResponses(bs []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		PropertyID: a.Slot.PropertyID,
		Date:       a.Slot.Date.Format(domain.DateLayout),
		Shift:      string(a.Slot.Shift),
		Available:  a.Available,
	}
	if a.Price != nil {
		price := a.Price.StringFixed(2)
		resp.Price = &price
	}
	return resp
}

func ToDeliveryResponse(d domain.Delivery) DeliveryResponse {
	resp := DeliveryResponse{
		Channel:   string(d.Channel),
		Delivered: d.Delivered,
		Duplicate: d.Duplicate,
		MessageID: d.MessageID,
	}
	if d.Err != nil {
		resp.Error = d.Err.Error()
	}
	return resp
}

func ToMessageResponses(msgs []*domain.Message) []MessageResponse {
	resp := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, MessageResponse{
			ID:        m.ID,
			BookingID: m.BookingID,
			Sender:    string(m.Sender),
			Event:     string(m.Event),
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
