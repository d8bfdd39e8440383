package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"intake-agent/internal/intake"
	"intake-agent/internal/observability"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
	ErrEmptyTemplate       = errors.New("email template is empty")
)

const templateIntakeConfirmation = "intake_confirmation"

// EmailService handles sending emails
type EmailService struct {
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]*template.Template
}

var _ EmailSender = (*EmailService)(nil)

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	PatientName    string
	BookedProvider string
	BookedDate     string
	Reason         string
}

// New creates a new EmailService
func New(mailClient MailClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]*template.Template{
			templateIntakeConfirmation: template.Must(template.New(templateIntakeConfirmation).Parse(`
			<html>
				<body>
					<h1>Your appointment is confirmed</h1>
					<p>Hi {{.PatientName}},</p>
					<p>Thank you for calling the Rolovic Health Clinic. Your appointment is confirmed with <strong>{{.BookedProvider}}</strong> on <strong>{{.BookedDate}}</strong>.</p>
					<p>Reason for visit: {{.Reason}}</p>
					<p>If you need to reschedule, please call us back.</p>
				</body>
			</html>
			`)),
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendIntakeConfirmationEmail sends the appointment confirmation to the
// email address collected during the call.
func (s *EmailService) SendIntakeConfirmationEmail(ctx context.Context, record intake.Record) error {
	to := strings.TrimSpace(record.Email)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateIntakeConfirmation},
		observability.Field{Key: "recipient", Value: to},
	)

	if !strings.Contains(to, "@") {
		s.logger.Warn(ctx, "skipping confirmation email for invalid address")
		return ErrInvalidEmailAddress
	}

	subject := fmt.Sprintf("Appointment confirmed with %s", record.BookedProvider)

	htmlContent, err := s.renderTemplate(templateIntakeConfirmation, TemplateData{
		PatientName:    record.PatientName,
		BookedProvider: record.BookedProvider,
		BookedDate:     record.BookedDate,
		Reason:         record.Reason,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to render intake confirmation email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send intake confirmation email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
