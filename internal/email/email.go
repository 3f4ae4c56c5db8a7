// Package email provides email sending functionality
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"

	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
)

// Config holds email configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	UseTLS   bool

	// NotifyTo receives new-inquiry notifications (the studio's inbox)
	NotifyTo string
}

// Service handles email sending
type Service struct {
	config    *Config
	templates map[string]*template.Template
}

// NewService creates a new email service
func NewService(config *Config) *Service {
	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
	}
	s.loadTemplates()
	return s
}

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {

	// New Inquiry Template
	s.templates["inquiry"] = template.Must(template.New("inquiry").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #be185d; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .inquiry-card { background: white; border-radius: 8px; padding: 20px; margin: 20px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .label { color: #6b7280; font-size: 13px; text-transform: uppercase; }
        .footer { margin-top: 24px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>💄 New Booking Inquiry</h2>
    </div>
    <div class="content">
        <p>You have a new inquiry from the website contact form.</p>

        <div class="inquiry-card">
            <p><span class="label">Name</span><br/><strong>{{.FullName}}</strong></p>
            <p><span class="label">Phone</span><br/>{{.Phone}}</p>
            <p><span class="label">Event Date</span><br/>{{.EventDate}}</p>
            {{if .EventType}}<p><span class="label">Event Type</span><br/>{{.EventType}}</p>{{end}}
            <p><span class="label">Message</span><br/>{{.Message}}</p>
        </div>

        <p style="font-size: 14px; color: #6b7280;">
            Reply to the client directly by phone, or manage the inquiry from the admin dashboard.
        </p>
    </div>
    <div class="footer">
        Glam Studio • Website Notifications
    </div>
</div>
</body>
</html>
`))
}

// Send sends an email
func (s *Service) Send(email *Email) error {
	if s.config.Host == "" {
		log.Println("Email not configured, skipping send")
		return nil
	}

	// Build message
	var msg bytes.Buffer

	// Headers
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.HTMLBody)
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.Body)
	}

	// Create auth
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	if s.config.UseTLS {
		// TLS connection
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("TLS dial error: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			return fmt.Errorf("SMTP client error: %w", err)
		}
		defer client.Close()

		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("auth error: %w", err)
		}

		if err = client.Mail(s.config.From); err != nil {
			return fmt.Errorf("mail error: %w", err)
		}

		for _, rcpt := range email.To {
			if err = client.Rcpt(rcpt); err != nil {
				return fmt.Errorf("rcpt error: %w", err)
			}
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("data error: %w", err)
		}

		_, err = w.Write(msg.Bytes())
		if err != nil {
			return fmt.Errorf("write error: %w", err)
		}

		err = w.Close()
		if err != nil {
			return fmt.Errorf("close error: %w", err)
		}

		return client.Quit()
	}

	// Non-TLS
	return smtp.SendMail(addr, auth, s.config.From, email.To, msg.Bytes())
}

// SendWithTemplate sends an email using a template
func (s *Service) SendWithTemplate(to []string, subject, templateName string, data interface{}) error {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return fmt.Errorf("template not found: %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	return s.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: body.String(),
	})
}

// InquiryData holds data for the new-inquiry email
type InquiryData struct {
	FullName  string
	Phone     string
	EventDate string
	EventType string
	Message   string
}

// NotifyNewInquiry sends a notification email to the studio about a new
// contact inquiry
func (s *Service) NotifyNewInquiry(contact *repository.Contact) error {
	if s.config.NotifyTo == "" {
		log.Println("No notification recipient configured, skipping inquiry email")
		return nil
	}

	return s.SendWithTemplate(
		[]string{s.config.NotifyTo},
		fmt.Sprintf("New booking inquiry from %s", contact.FullName),
		"inquiry",
		InquiryData{
			FullName:  contact.FullName,
			Phone:     contact.Phone,
			EventDate: contact.EventDate.Format("January 2, 2006"),
			EventType: contact.EventType,
			Message:   contact.Message,
		},
	)
}
