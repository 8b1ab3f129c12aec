package commands

import (
	"fmt"
	"strings"

	"party-rental/internal/usecase/shared"
)

func buildBookingConfirmation(businessName, replyTo string, n shared.BookingNotification) shared.EmailMessage {
	lines := []string{
		fmt.Sprintf("Hi %s,", n.CustomerName),
		"",
		"Thanks for your booking request. We will reach out shortly to confirm delivery details.",
		"",
	}
	lines = append(lines, bookingSummary(n)...)

	return shared.EmailMessage{
		To:      n.CustomerEmail,
		ReplyTo: replyTo,
		Subject: fmt.Sprintf("Booking received - %s", displayName(businessName)),
		Body:    strings.Join(lines, "\n"),
	}
}

func buildBookingStatusUpdate(businessName, replyTo string, n shared.BookingNotification) shared.EmailMessage {
	lines := []string{
		fmt.Sprintf("Hi %s,", n.CustomerName),
		"",
		fmt.Sprintf("Your booking is now %s.", statusLabel(n.Status)),
		"",
	}
	lines = append(lines, bookingSummary(n)...)

	return shared.EmailMessage{
		To:      n.CustomerEmail,
		ReplyTo: replyTo,
		Subject: fmt.Sprintf("Booking %s - %s", statusLabel(n.Status), displayName(businessName)),
		Body:    strings.Join(lines, "\n"),
	}
}

func buildContactReceived(inbox string, n shared.ContactNotification) shared.EmailMessage {
	lines := []string{
		fmt.Sprintf("From: %s <%s>", n.Name, n.Email),
	}
	if n.Phone != nil {
		lines = append(lines, fmt.Sprintf("Phone: %s", *n.Phone))
	}
	lines = append(lines, "", n.Message)

	return shared.EmailMessage{
		To:      inbox,
		ReplyTo: n.Email,
		Subject: fmt.Sprintf("New inquiry from %s", n.Name),
		Body:    strings.Join(lines, "\n"),
	}
}

func bookingSummary(n shared.BookingNotification) []string {
	mixers := "none"
	if len(n.Mixers) > 0 {
		mixers = strings.Join(n.Mixers, ", ")
	}
	return []string{
		fmt.Sprintf("Booking: %s", n.BookingID),
		fmt.Sprintf("Machine: %s (%dL)", n.MachineType, n.Capacity),
		fmt.Sprintf("Mixers: %s", mixers),
		fmt.Sprintf("Rental: %s to %s", n.RentalDate, n.ReturnDate),
		fmt.Sprintf("Address: %s", n.EventAddress),
		fmt.Sprintf("Total: $%.2f", n.Total),
	}
}

func statusLabel(status string) string {
	if status == "in-progress" {
		return "in progress"
	}
	return status
}

func displayName(businessName string) string {
	if name := strings.TrimSpace(businessName); name != "" {
		return name
	}
	return "Party Rentals"
}
