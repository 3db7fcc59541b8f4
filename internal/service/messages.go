package service

import (
	"fmt"
	"strings"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

func reservationMessage(b *domain.Booking, p *domain.Property, instructions string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking %s is reserved.\n", b.Code)
	fmt.Fprintf(&sb, "Property: %s\nDate: %s\nShift: %s\nTotal: Rs. %s\n",
		p.Name, b.BookingDate.Format(domain.DateLayout), b.Shift, b.TotalCost.StringFixed(0))
	sb.WriteString("The slot is held while payment is pending. ")
	sb.WriteString("Send a payment screenshot or the transfer details to complete the booking.")
	if instructions != "" {
		sb.WriteString("\n")
		sb.WriteString(instructions)
	}
	return sb.String()
}
