package email

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Template names the fixed notification registry.
type Template string

const (
	TemplateInquiryConfirmation Template = "inquiry-confirmation"
	TemplateAdminNotification   Template = "admin-notification"
	TemplateBookingConfirmation Template = "booking-confirmation"
)

// Data carries the variables the templates may reference. Each template
// reads the subset it requires.
type Data struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	InquiryID   string
	EventDate   *time.Time
	Message     string

	ClientName  string
	BookingID   string
	EventName   string
	Venue       string
	TotalAmount float64
}

// Message is a rendered notification ready for delivery.
type Message struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// Render produces the message for a registry template. Unknown template
// names are an error; the registry is closed.
func Render(t Template, data Data) (Message, error) {
	switch t {
	case TemplateInquiryConfirmation:
		return renderInquiryConfirmation(data), nil
	case TemplateAdminNotification:
		return renderAdminNotification(data), nil
	case TemplateBookingConfirmation:
		return renderBookingConfirmation(data), nil
	}
	return Message{}, fmt.Errorf("template '%s' not found", t)
}

func renderInquiryConfirmation(data Data) Message {
	subject := "Thank you for your inquiry - Audio Video Events"

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #dc2626; padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0;">Audio Video Events</h1>
    <p style="color: white; margin: 10px 0 0 0;">We Make Memories</p>
  </div>
  <div style="padding: 30px; background: #f9fafb;">
    <h2 style="color: #1f2937;">Hello %s!</h2>
    <p style="color: #4b5563;">Thank you for your inquiry about our <strong>%s</strong> services.
      We've received your request and our team will contact you within 2 hours.</p>
    <div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #ef4444;">
      <p style="margin: 5px 0; color: #6b7280;"><strong>Inquiry ID:</strong> %s</p>
      <p style="margin: 5px 0; color: #6b7280;"><strong>Service:</strong> %s</p>
      <p style="margin: 5px 0; color: #6b7280;"><strong>Status:</strong> Under Review</p>
    </div>
  </div>
</div>`, data.Name, data.ServiceType, data.InquiryID, data.ServiceType)

	text := fmt.Sprintf(`Hello %s!

Thank you for your inquiry about our %s services.
We've received your request and our team will contact you within 2 hours.

Inquiry ID: %s
Service: %s
Status: Under Review`, data.Name, data.ServiceType, data.InquiryID, data.ServiceType)

	return Message{Subject: subject, HTMLBody: html, TextBody: text}
}

func renderAdminNotification(data Data) Message {
	subject := fmt.Sprintf("New Inquiry: %s - %s", data.ServiceType, data.Name)

	var optional strings.Builder
	if data.EventDate != nil {
		optional.WriteString(fmt.Sprintf(`<tr><td style="padding: 8px 0; font-weight: bold;">Event Date:</td><td style="padding: 8px 0;">%s</td></tr>`,
			formatDate(*data.EventDate)))
	}
	if data.Message != "" {
		optional.WriteString(fmt.Sprintf(`<tr><td style="padding: 8px 0; font-weight: bold; vertical-align: top;">Message:</td><td style="padding: 8px 0;">%s</td></tr>`,
			data.Message))
	}

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1f2937; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">New Inquiry Alert</h1>
  </div>
  <div style="padding: 30px; background: #f9fafb;">
    <h2 style="color: #ef4444;">New %s Inquiry</h2>
    <table style="width: 100%%; border-collapse: collapse; background: white; padding: 20px;">
      <tr><td style="padding: 8px 0; font-weight: bold; width: 120px;">Name:</td><td style="padding: 8px 0;">%s</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Email:</td><td style="padding: 8px 0;">%s</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Phone:</td><td style="padding: 8px 0;">%s</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Service:</td><td style="padding: 8px 0;">%s</td></tr>
      %s
    </table>
  </div>
</div>`, data.ServiceType, data.Name, data.Email, data.Phone, data.ServiceType, optional.String())

	text := fmt.Sprintf(`New %s Inquiry

Name: %s
Email: %s
Phone: %s
Service: %s
Inquiry ID: %s`, data.ServiceType, data.Name, data.Email, data.Phone, data.ServiceType, data.InquiryID)

	return Message{Subject: subject, HTMLBody: html, TextBody: text}
}

func renderBookingConfirmation(data Data) Message {
	subject := "Booking Confirmed - Audio Video Events"

	eventDate := ""
	if data.EventDate != nil {
		eventDate = formatDate(*data.EventDate)
	}
	amount := FormatAmount(data.TotalAmount)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #059669; padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0;">Booking Confirmed!</h1>
    <p style="color: white; margin: 10px 0 0 0;">Your event is secured with us</p>
  </div>
  <div style="padding: 30px; background: #f9fafb;">
    <h2 style="color: #1f2937;">Hello %s!</h2>
    <p style="color: #4b5563;">Great news! Your booking for <strong>%s</strong> has been confirmed.
      We're excited to make your event memorable!</p>
    <table style="width: 100%%; border-collapse: collapse; background: white; padding: 20px;">
      <tr><td style="padding: 5px 0; font-weight: bold; width: 140px;">Booking ID:</td><td style="padding: 5px 0;">%s</td></tr>
      <tr><td style="padding: 5px 0; font-weight: bold;">Event Date:</td><td style="padding: 5px 0;">%s</td></tr>
      <tr><td style="padding: 5px 0; font-weight: bold;">Venue:</td><td style="padding: 5px 0;">%s</td></tr>
      <tr><td style="padding: 5px 0; font-weight: bold;">Total Amount:</td><td style="padding: 5px 0; font-weight: bold;">₹%s</td></tr>
    </table>
    <p style="color: #4b5563;">Our team will contact you 48 hours before your event to confirm all arrangements.</p>
  </div>
</div>`, data.ClientName, data.EventName, data.BookingID, eventDate, data.Venue, amount)

	text := fmt.Sprintf(`Hello %s!

Your booking for %s has been confirmed.

Booking ID: %s
Event Date: %s
Venue: %s
Total Amount: ₹%s`, data.ClientName, data.EventName, data.BookingID, eventDate, data.Venue, amount)

	return Message{Subject: subject, HTMLBody: html, TextBody: text}
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatAmount renders a currency amount with thousands separators,
// dropping the fraction when it is zero: 13000 -> "13,000".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}
	return sign + grouped.String() + fracPart
}
