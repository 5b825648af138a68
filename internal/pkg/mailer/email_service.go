package mailer

import (
	"fmt"

	"ouderschapsplan-api/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSubscriptionConfirmation(toEmail, naam, bedrag, interval string) error
	SendSubscriptionCancellation(toEmail, naam string) error
}

type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	dialer      messageSender
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) SendSubscriptionConfirmation(toEmail, naam, bedrag, interval string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Bedankt voor je abonnement, %s!</h2>
			<p>Je abonnement is actief. Er wordt %s per %s afgeschreven.</p>
			<p>Je kunt nu al je dossiers en ouderschapsplannen beheren.</p>
		</div>
	`, displayName(naam), bedrag, interval)

	return s.send(toEmail, "Je abonnement is geactiveerd", body)
}

func (s *emailService) SendSubscriptionCancellation(toEmail, naam string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Je abonnement is opgezegd</h2>
			<p>Beste %s, we hebben je opzegging ontvangen. Er worden geen nieuwe betalingen meer afgeschreven.</p>
		</div>
	`, displayName(naam))

	return s.send(toEmail, "Je abonnement is opgezegd", body)
}

func (s *emailService) send(toEmail, subject, body string) error {
	if toEmail == "" {
		return fmt.Errorf("no recipient for %q", subject)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send email", map[string]interface{}{
			"to":      toEmail,
			"subject": subject,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("MAILER", "Email sent", map[string]interface{}{
		"to":      toEmail,
		"subject": subject,
	})
	return nil
}

func displayName(naam string) string {
	if naam == "" {
		return "klant"
	}
	return naam
}
