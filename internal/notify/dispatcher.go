package notify

import (
	"fmt"
	"strings"

	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
	"tour-packages-backend/internal/utils"
)

type Channel string

const (
	ChannelOwnerEmail       Channel = "owner_email"
	ChannelCustomerEmail    Channel = "customer_email"
	ChannelCustomerWhatsApp Channel = "customer_whatsapp"
	ChannelOwnerWhatsApp    Channel = "owner_whatsapp"
)

// Result records the outcome of one channel attempt. Err is a
// domain.NotificationError when the send failed; Skipped marks channels that
// could not be attempted at all (no phone, transport not configured).
type Result struct {
	Channel Channel
	Err     error
	Skipped bool
}

// Dispatcher fans an accepted inquiry out to four channels. Every attempt is
// isolated: one failure never prevents the others and nothing propagates back
// into the submission's success path. The caller logs the results and moves
// on.
type Dispatcher struct {
	Email    EmailSender
	Messages MessageSender

	OwnerEmail  string
	OwnerPhone  string
	FromPhone   string
	CountryCode string
}

// Dispatch runs the four sends in order and returns one result per channel.
func (d Dispatcher) Dispatch(requestID string, inq models.Inquiry, packageTitle string) []Result {
	results := make([]Result, 0, 4)

	results = append(results, d.sendEmail(ChannelOwnerEmail, d.OwnerEmail,
		OwnerEmailSubject(packageTitle), OwnerEmailBody(inq, packageTitle)))

	results = append(results, d.sendEmail(ChannelCustomerEmail, inq.Email,
		CustomerEmailSubject(), CustomerEmailBody(inq.Name, packageTitle)))

	results = append(results, d.sendWhatsApp(ChannelCustomerWhatsApp, inq.Phone,
		CustomerWhatsAppBody(inq.Name, packageTitle)))

	results = append(results, d.sendWhatsApp(ChannelOwnerWhatsApp, d.OwnerPhone,
		OwnerWhatsAppBody(inq, packageTitle)))

	for _, res := range results {
		switch {
		case res.Skipped:
			utils.LogEvent(requestID, "notify", "skip", fmt.Sprintf("inquiry_id=%d channel=%s", inq.ID, res.Channel))
		case res.Err != nil:
			utils.LogEvent(requestID, "notify", "send_failed", fmt.Sprintf("inquiry_id=%d %v", inq.ID, res.Err))
		default:
			utils.LogEvent(requestID, "notify", "sent", fmt.Sprintf("inquiry_id=%d channel=%s", inq.ID, res.Channel))
		}
	}

	return results
}

func (d Dispatcher) sendEmail(ch Channel, to, subject, body string) Result {
	if d.Email == nil || strings.TrimSpace(to) == "" {
		return Result{Channel: ch, Skipped: true}
	}
	if err := d.Email.Send(to, subject, body); err != nil {
		return Result{Channel: ch, Err: domain.NotificationError{Channel: string(ch), Err: err}}
	}
	return Result{Channel: ch}
}

func (d Dispatcher) sendWhatsApp(ch Channel, to, body string) Result {
	if d.Messages == nil || strings.TrimSpace(to) == "" {
		return Result{Channel: ch, Skipped: true}
	}
	to = NormalizePhone(to, d.CountryCode)
	if err := d.Messages.Send(d.FromPhone, to, body); err != nil {
		return Result{Channel: ch, Err: domain.NotificationError{Channel: string(ch), Err: err}}
	}
	return Result{Channel: ch}
}
