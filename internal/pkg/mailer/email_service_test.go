package mailer

import (
	"bytes"
	"errors"
	"testing"

	"ouderschapsplan-api/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, m...)
	return nil
}

func newTestService(sender *captureSender) *emailService {
	return &emailService{
		dialer:      sender,
		senderEmail: "noreply@ouderschapsplan.test",
		senderName:  "Ouderschapsplan",
		logger:      logger.NewNopLogger(),
	}
}

func TestSendSubscriptionConfirmation(t *testing.T) {
	sender := &captureSender{}
	svc := newTestService(sender)

	require.NoError(t, svc.SendSubscriptionConfirmation("ouder@example.nl", "Sanne", "9.95", "1 month"))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"ouder@example.nl"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Je abonnement is geactiveerd"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Sanne")
	assert.Contains(t, buf.String(), "9.95")
}

func TestSendRequiresRecipient(t *testing.T) {
	sender := &captureSender{}
	svc := newTestService(sender)

	assert.Error(t, svc.SendSubscriptionCancellation("", "Sanne"))
	assert.Empty(t, sender.sent)
}

func TestSendPropagatesDialError(t *testing.T) {
	svc := newTestService(&captureSender{err: errors.New("smtp down")})
	assert.EqualError(t, svc.SendSubscriptionCancellation("ouder@example.nl", ""), "smtp down")
}
