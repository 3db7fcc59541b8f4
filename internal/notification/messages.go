package notification

import (
	"fmt"
	"strings"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

func render(n domain.Notification, b *domain.Booking) string {
	var sb strings.Builder

	switch {
	case n.Event == domain.EventPaymentReceived && n.Audience == domain.AudienceAdmin:
		fmt.Fprintf(&sb, "Payment claim needs verification\n\n")
		writeBooking(&sb, b)
		writeClaim(&sb, b.Claim)
		fmt.Fprintf(&sb, "\nConfirm or reject with booking code %s.", b.Code)

	case n.Event == domain.EventPaymentReceived:
		fmt.Fprintf(&sb, "We received your payment details for booking %s.\n", b.Code)
		sb.WriteString("An admin will verify them shortly and you will be notified here.")

	case n.Event == domain.EventPaymentConfirmed:
		fmt.Fprintf(&sb, "Your booking is confirmed!\n\n")
		writeBooking(&sb, b)
		sb.WriteString("\nThank you, we look forward to hosting you.")

	case n.Event == domain.EventPaymentRejected:
		fmt.Fprintf(&sb, "We could not verify the payment for booking %s.\n", b.Code)
		if n.Reason != "" {
			fmt.Fprintf(&sb, "Reason: %s\n", n.Reason)
		}
		sb.WriteString("The slot is still held for you. Please send a clearer screenshot or the correct transfer details.")

	case n.Event == domain.EventBookingExpired:
		fmt.Fprintf(&sb, "Booking %s has expired because no payment was received in time.\n", b.Code)
		sb.WriteString("The slot has been released. You are welcome to book again.")

	default:
		fmt.Fprintf(&sb, "Booking %s is now %s.", b.Code, b.Status)
	}

	return sb.String()
}

func writeBooking(sb *strings.Builder, b *domain.Booking) {
	fmt.Fprintf(sb, "Booking: %s\n", b.Code)
	fmt.Fprintf(sb, "Date: %s\n", b.BookingDate.Format(domain.DateLayout))
	fmt.Fprintf(sb, "Shift: %s\n", b.Shift)
	fmt.Fprintf(sb, "Buyer: %s\n", b.BuyerName)
	fmt.Fprintf(sb, "Total: Rs. %s\n", b.TotalCost.StringFixed(0))
}

func writeClaim(sb *strings.Builder, c *domain.PaymentClaim) {
	if c == nil {
		return
	}

	fmt.Fprintf(sb, "Source: %s\n", c.Source)
	if c.Amount != nil {
		fmt.Fprintf(sb, "Amount paid: Rs. %s\n", c.Amount.String())
	} else {
		sb.WriteString("Amount paid: not readable from screenshot, check manually\n")
	}
	if c.SenderName != "" {
		fmt.Fprintf(sb, "Sender: %s\n", c.SenderName)
	}
	if c.SenderPhone != "" {
		fmt.Fprintf(sb, "Sender phone: %s\n", c.SenderPhone)
	}
	if c.TransactionID != "" {
		fmt.Fprintf(sb, "Transaction: %s\n", c.TransactionID)
	}
	if c.Confidence != nil {
		fmt.Fprintf(sb, "Confidence: %.2f\n", *c.Confidence)
	}
	if c.ScreenshotURL != "" {
		fmt.Fprintf(sb, "Screenshot: %s\n", c.ScreenshotURL)
	}
}
