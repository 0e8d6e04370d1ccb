package email

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/rs/zerolog/log"
)

// Sender delivers rendered messages. Implemented by SMTPClient.
type Sender interface {
	Send(to, toName, subject, htmlBody string) error
}

// Service renders templates and delivers mail off the request path.
// Enqueueing never blocks a booking response; failures are logged only.
type Service struct {
	sender    Sender
	templates map[string]*template.Template
	queue     chan *QueuedEmail
	wg        sync.WaitGroup
}

// QueuedEmail represents an email waiting in the send queue.
type QueuedEmail struct {
	To           string
	ToName       string
	Subject      string
	TemplateName string
	Data         interface{}
}

// NewService creates the email service and starts its worker.
func NewService(sender Sender) *Service {
	s := &Service{
		sender:    sender,
		templates: make(map[string]*template.Template),
		queue:     make(chan *QueuedEmail, 100),
	}

	s.loadTemplates()

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *Service) loadTemplates() {
	templates := map[string]string{
		"welcome":              WelcomeTemplate,
		"booking_confirmation": BookingConfirmationTemplate,
		"appointment_status":   AppointmentStatusTemplate,
		"profile_status":       ProfileStatusTemplate,
	}

	for name, content := range templates {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

// Queue enqueues an email for async delivery. Drops with a log entry when
// the queue is full rather than blocking the caller.
func (s *Service) Queue(to, toName, subject, templateName string, data interface{}) {
	email := &QueuedEmail{
		To:           to,
		ToName:       toName,
		Subject:      subject,
		TemplateName: templateName,
		Data:         data,
	}

	select {
	case s.queue <- email:
	default:
		log.Warn().
			Str("to", to).
			Str("template", templateName).
			Msg("Email queue full, dropping message")
	}
}

// Close drains the queue and stops the worker.
func (s *Service) Close() {
	close(s.queue)
	s.wg.Wait()
}

func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		if err := s.send(email); err != nil {
			log.Error().Err(err).
				Str("to", email.To).
				Str("template", email.TemplateName).
				Msg("Failed to send email")
		}
	}
}

func (s *Service) send(email *QueuedEmail) error {
	tmpl, ok := s.templates[email.TemplateName]
	if !ok {
		return fmt.Errorf("unknown email template: %s", email.TemplateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, email.Data); err != nil {
		return fmt.Errorf("render template %s: %w", email.TemplateName, err)
	}

	return s.sender.Send(email.To, email.ToName, email.Subject, body.String())
}
