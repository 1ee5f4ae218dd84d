package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"alugo-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed email sender. An empty API key
// turns the service into a logger-only no-op, which is the development mode.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendFinalizationReceipt(ctx context.Context, to, toName, itemLabel, clientName string, totalCents, overageMinutes int64) error {
	subject := fmt.Sprintf("Rental closed: %s", itemLabel)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe rental of %s by %s was finalized.\n\nTotal billed: %s\nOverage: %d minutes\n\n— Alugo",
		toName, itemLabel, clientName, formatCents(totalCents), overageMinutes)
	return s.send(to, toName, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, to, toName, itemLabel, clientName string, overdueMinutes int64) error {
	subject := fmt.Sprintf("Rental overdue: %s", itemLabel)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe rental of %s by %s is %d minutes past its scheduled end.\n\n— Alugo",
		toName, itemLabel, clientName, overdueMinutes)
	return s.send(to, toName, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

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

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
