package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRentalRequested(ctx context.Context, to, name, vehicleName, rentalDate, returnDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your rental request for %s from %s to %s. You will be notified once it is reviewed.\n\nThank you.", name, vehicleName, rentalDate, returnDate)
	return s.send(to, name, "Rental request received", body)
}

func (s *emailService) SendRentalApproved(ctx context.Context, to, name, vehicleName, rentalDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s starting on %s has been approved.\n\nThank you.", name, vehicleName, rentalDate)
	return s.send(to, name, "Rental approved", body)
}

func (s *emailService) SendRentalCancelled(ctx context.Context, to, name, vehicleName string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s has been cancelled.\n\nThank you.", name, vehicleName)
	return s.send(to, name, "Rental cancelled", body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, to, name, vehicleName, rentalDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nA reminder that your rental of %s starts on %s.\n\nThank you.", name, vehicleName, rentalDate)
	return s.send(to, name, "Pickup reminder", body)
}
