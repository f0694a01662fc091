package utils

import (
	"fmt"
	"log"

	"github.com/keighl/postmark"
)

// EmailService sends transactional notifications through Postmark.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService returns nil when no API token is configured; callers
// treat a nil service as notifications disabled.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set; email notifications disabled")
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendVerifiedNotice tells a seller their account passed verification.
func (es *EmailService) SendVerifiedNotice(toEmail string) error {
	subject := "Your seller account is verified"
	htmlContent := "<strong>Good news!</strong> Your seller account has been verified and your listings now carry the verified badge."
	return es.SendEmail(toEmail, subject, htmlContent)
}
