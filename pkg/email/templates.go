package email

import (
	"fmt"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	ClientName    string
	Email         string
	ServiceName   string
	TherapistName string
	BranchName    string
	Date          string // YYYY-MM-DD
	StartClock    string // HH:MM
	EndClock      string // HH:MM
	AppName       string
	BaseURL       string
}

func appNameOrDefault(name string) string {
	if name == "" {
		return "Painel Clínica"
	}
	return name
}

func clientNameOrDefault(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

// BuildAppointmentConfirmationEmail creates a booking confirmation message.
func BuildAppointmentConfirmationEmail(data AppointmentEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	clientName := clientNameOrDefault(data.ClientName)

	subject := fmt.Sprintf("Appointment confirmed: %s on %s at %s", data.ServiceName, data.Date, data.StartClock)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment has been booked.

Service:   %s
Therapist: %s
Branch:    %s
Date:      %s
Time:      %s - %s

If you need to reschedule or cancel, please contact the clinic.

Thanks,
The %s Team`,
		clientName, data.ServiceName, data.TherapistName, data.BranchName,
		data.Date, data.StartClock, data.EndClock, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment has been booked.</p>
    <table style="background-color: #f3f4f6; border-radius: 6px; padding: 10px; width: 100%%; margin: 20px 0;">
        <tr><td style="padding: 6px 15px; color: #6b7280;">Service</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Therapist</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Branch</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Date</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Time</td><td style="padding: 6px 15px;"><strong>%s - %s</strong></td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px;">If you need to reschedule or cancel, please contact the clinic.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		clientName, data.ServiceName, data.TherapistName, data.BranchName,
		data.Date, data.StartClock, data.EndClock, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentReminderEmail creates a reminder message for an upcoming appointment.
func BuildAppointmentReminderEmail(data AppointmentEmailData) Message {
	appName := appNameOrDefault(data.AppName)
	clientName := clientNameOrDefault(data.ClientName)

	subject := fmt.Sprintf("Reminder: %s on %s at %s", data.ServiceName, data.Date, data.StartClock)

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder of your upcoming appointment.

Service:   %s
Therapist: %s
Branch:    %s
Date:      %s
Time:      %s - %s

See you soon,
The %s Team`,
		clientName, data.ServiceName, data.TherapistName, data.BranchName,
		data.Date, data.StartClock, data.EndClock, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>This is a reminder of your upcoming appointment.</p>
    <table style="background-color: #f3f4f6; border-radius: 6px; padding: 10px; width: 100%%; margin: 20px 0;">
        <tr><td style="padding: 6px 15px; color: #6b7280;">Service</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Therapist</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Branch</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Date</td><td style="padding: 6px 15px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 15px; color: #6b7280;">Time</td><td style="padding: 6px 15px;"><strong>%s - %s</strong></td></tr>
    </table>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">See you soon,<br>The %s Team</p>
</body>
</html>`,
		clientName, data.ServiceName, data.TherapistName, data.BranchName,
		data.Date, data.StartClock, data.EndClock, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancelledEmail creates a cancellation notice message.
func BuildAppointmentCancelledEmail(data AppointmentEmailData, reason string) Message {
	appName := appNameOrDefault(data.AppName)
	clientName := clientNameOrDefault(data.ClientName)

	subject := fmt.Sprintf("Appointment cancelled: %s on %s", data.ServiceName, data.Date)

	reasonText := ""
	if reason != "" {
		reasonText = fmt.Sprintf("\nReason: %s\n", reason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment for %s with %s on %s at %s has been cancelled.
%s
If you would like to rebook, please contact the clinic.

Thanks,
The %s Team`,
		clientName, data.ServiceName, data.TherapistName, data.Date, data.StartClock,
		reasonText, appName)

	reasonHTML := ""
	if reason != "" {
		reasonHTML = fmt.Sprintf(`<p style="background-color: #fef2f2; color: #991b1b; padding: 10px 15px; border-radius: 4px;">Reason: %s</p>`, reason)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>Your appointment for <strong>%s</strong> with <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> has been cancelled.</p>
    %s
    <p style="color: #6b7280; font-size: 14px;">If you would like to rebook, please contact the clinic.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		clientName, data.ServiceName, data.TherapistName, data.Date, data.StartClock,
		reasonHTML, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordResetEmail creates a password reset message for staff users.
func BuildPasswordResetEmail(email, name, resetURL string, expiryMinutes int) Message {
	const appName = "Painel Clínica"

	name = clientNameOrDefault(name)
	subject := fmt.Sprintf("Reset your %s password", appName)

	textBody := fmt.Sprintf(`Hi %s,

You requested a password reset for your %s account.

Click the link below to choose a new password:
%s

This link is valid for %d minutes. If you didn't request this, please ignore this email.

Thanks,
The %s Team`,
		name, appName, resetURL, expiryMinutes, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>You requested a password reset for your %s account.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Reset Password</a>
    </p>
    <p style="color: #ef4444; font-size: 14px; text-align: center;">This link is valid for %d minutes.</p>
    <p>If you didn't request this, please ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        Thanks,<br>The %s Team
    </p>
</body>
</html>`, name, appName, resetURL, expiryMinutes, appName)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
