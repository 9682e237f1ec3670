package notify

import (
	"fmt"

	"tour-packages-backend/internal/domain/models"
)

// Pure body builders, kept apart from the transports so content can be
// tested without sending anything.

func OwnerEmailSubject(packageTitle string) string {
	return fmt.Sprintf("New Inquiry for %s", packageTitle)
}

func OwnerEmailBody(inq models.Inquiry, packageTitle string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px; text-align: center; color: white;">
    <h1 style="margin: 0; font-size: 28px;">New Inquiry</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px;">%s</p>
  </div>
  <div style="padding: 30px; background: #f9f9f9;">
    <h2 style="color: #333; margin-bottom: 20px;">You have received a new inquiry</h2>
    <div style="background: #fff; border: 2px solid #667eea; border-radius: 10px; padding: 20px; margin: 25px 0;">
      <p><strong>Name:</strong> %s</p>
      <p><strong>Email:</strong> %s</p>
      <p><strong>Phone:</strong> %s</p>
      <p><strong>Travelers:</strong> %d</p>
      <p><strong>Message:</strong> %s</p>
    </div>
    <div style="text-align: center; margin-top: 30px;">
      <p style="color: #999; font-size: 12px;">Tour Packages. All rights reserved.</p>
    </div>
  </div>
</div>`, packageTitle, inq.Name, inq.Email, inq.Phone, inq.Travelers, inq.Message)
}

func CustomerEmailSubject() string {
	return "Thank you for your inquiry!"
}

func CustomerEmailBody(name, packageTitle string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px; text-align: center; color: white;">
    <h1 style="margin: 0; font-size: 28px;">Tour Packages</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px;">Inquiry Received</p>
  </div>
  <div style="padding: 30px; background: #f9f9f9;">
    <h2 style="color: #333; margin-bottom: 20px;">Hello %s,</h2>
    <p style="color: #666; line-height: 1.6; margin-bottom: 25px;">
      Thank you for your interest in <strong>%s</strong>.
      We have received your request and will get back to you within 24 hours.
    </p>
    <p style="color: #666; line-height: 1.6; margin-bottom: 25px;">
      In the meantime, feel free to explore more of our travel packages.
    </p>
    <div style="text-align: center; margin-top: 30px;">
      <p style="color: #999; font-size: 12px;">Tour Packages. All rights reserved.</p>
    </div>
  </div>
</div>`, name, packageTitle)
}

func CustomerWhatsAppBody(name, packageTitle string) string {
	return fmt.Sprintf("Hello %s,\n\nThank you for your inquiry about \"%s\". We will get back to you shortly.", name, packageTitle)
}

func OwnerWhatsAppBody(inq models.Inquiry, packageTitle string) string {
	return fmt.Sprintf("New Inquiry for \"%s\"\nFrom: %s\nEmail: %s\nPhone: %s\nMessage: %s",
		packageTitle, inq.Name, inq.Email, inq.Phone, inq.Message)
}
