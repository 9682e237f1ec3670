package notify

import (
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageSender is the outbound messaging transport seam, keyed by
// phone-number-like identities.
type MessageSender interface {
	Send(from, to, body string) error
}

type TwilioMessageSender struct {
	client *twilio.RestClient
}

func NewTwilioMessageSender(accountSID, authToken string) *TwilioMessageSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	// a hung send degrades request latency only; bound it
	client.SetTimeout(15 * time.Second)
	return &TwilioMessageSender{client: client}
}

// Send delivers one WhatsApp message. From/to must already be normalized
// E.164 numbers; the whatsapp: channel prefix is added here.
func (s *TwilioMessageSender) Send(from, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + from)
	params.SetTo("whatsapp:" + to)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
