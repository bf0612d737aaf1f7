package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReservationDecisionEmailData holds data for the email sent to an event
// creator when staff approve or deny their reservation.
type ReservationDecisionEmailData struct {
	Email        string
	CreatorName  string
	EventName    string
	LocationName string
	Decision     string // "approved" or "denied"
}

// EmailService sends application emails.
type EmailService interface {
	SendReservationDecision(ctx context.Context, data *ReservationDecisionEmailData) error
}
