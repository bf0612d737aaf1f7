package services

import (
	"context"
	"fmt"

	"campusevents/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendReservationDecision sends the approval/denial notification to the event
// creator using the "reservation_decision" template.
func (s *emailService) SendReservationDecision(ctx context.Context, data *domain.ReservationDecisionEmailData) error {
	if data == nil {
		return fmt.Errorf("reservation decision data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reservation_decision", data)
	if err != nil {
		return fmt.Errorf("render reservation_decision template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send reservation decision email: %w", err)
	}
	return nil
}
