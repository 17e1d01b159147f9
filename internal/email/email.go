// internal/email/email.go
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/fieldworks/territory/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Data contains everything needed to send one email.
type Data struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Service sends transactional mail through Sendgrid.
type Service struct {
	config    *config.Config
	client    *sendgrid.Client
	templates map[string]*tmplPair
}

type tmplPair struct {
	html      *template.Template
	plaintext *template.Template
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		config:    cfg,
		client:    sendgrid.NewSendClient(cfg.Sendgrid.APIKey),
		templates: loadTemplates(),
	}
}

// Send renders the named template pair and delivers the message.
func (s *Service) Send(data Data) error {
	tmpl, exists := s.templates[data.TemplateName]
	if !exists {
		return fmt.Errorf("template %s not found", data.TemplateName)
	}

	var htmlBuf bytes.Buffer
	if err := tmpl.html.Execute(&htmlBuf, data.TemplateData); err != nil {
		return fmt.Errorf("rendering html template: %w", err)
	}

	var textBuf bytes.Buffer
	if err := tmpl.plaintext.Execute(&textBuf, data.TemplateData); err != nil {
		return fmt.Errorf("rendering plaintext template: %w", err)
	}

	if data.From == "" {
		data.From = s.config.Sendgrid.From
	}

	from := mail.NewEmail(data.FromName, data.From)
	to := mail.NewEmail("", data.To)
	message := mail.NewSingleEmail(from, data.Subject, to, textBuf.String(), htmlBuf.String())

	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via Sendgrid: %w", err)
	}
	if response.StatusCode != 202 {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
