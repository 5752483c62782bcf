package utils

import (
	"fmt"
	"log"

	"reviewdash/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Generic Send Email
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Skipping email to %s: SENDGRID_API_KEY not configured", toEmail)
		return nil
	}

	from := mail.NewEmail("ReviewDash", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("Sendgrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F3F4F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2563EB; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #111827; line-height: 1.6; }
			.content h2 { color: #111827; margin-top: 0; }
			.footer { background-color: #F3F4F6; padding: 20px; text-align: center; font-size: 12px; color: #6B7280; border-top: 1px solid #E5E7EB; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2563EB; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #EFF6FF; padding: 15px; border-radius: 4px; border-left: 4px solid #2563EB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>REVIEWDASH</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 ReviewDash. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name, companyName string) {
	subject := "Welcome to ReviewDash"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>ReviewDash</strong>! The workspace for <strong>%s</strong> is ready.</p>
		<p>Connect your first review source, pick a widget template and your reviews are live on your site in minutes.</p>
		<p>If you have any questions, feel free to reach out to our support team.</p>
	`, name, companyName)

	go SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Review invitation to a customer
func SendReviewInviteEmail(email, name, companyName, writeReviewURL string) {
	greeting := "Hi there,"
	if name != "" {
		greeting = fmt.Sprintf("Dear %s,", name)
	}

	subject := fmt.Sprintf("How was your experience with %s?", companyName)
	body := fmt.Sprintf(`
		<p>%s</p>
		<p>Thank you for choosing <strong>%s</strong>. We would love to hear how it went!</p>
		<p>It only takes a minute and helps others find us.</p>
		<a href="%s" class="btn">Write a review</a>
	`, greeting, companyName, writeReviewURL)

	go SendEmail(email, name, subject, getEmailTemplate("Share your experience", body))
}

// 3. Sync failure notice to the company owner
func SendSyncFailedEmail(email, name, locationLabel, provider string) {
	subject := "Review sync issue: " + locationLabel
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We could not refresh reviews for <strong>%s</strong> (%s).</p>
		<div class="info-box">
			Please check that the location is still connected and its place id is correct.
		</div>
	`, name, locationLabel, provider)

	go SendEmail(email, name, subject, getEmailTemplate("Sync Problem Detected", body))
}
