package utils

import (
	"fmt"
	"lms/config"
	"log"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		log.Printf("Email disabled, skipping: %s -> %v", subject, to)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Course Portal <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #d7b56d; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSE PORTAL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Course Portal. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---
// Every trigger is fire-and-forget: failures are logged inside SendEmail and
// never reach the request that queued them.

// 1. Email verification link (signup and unverified login)
func SendVerificationEmail(email, name, token string) {
	subject := "Verify your email"
	link := fmt.Sprintf("%s/user/verify/%s", config.AppConfig.BaseURL, token)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Course Portal</strong>! Please confirm your email address to activate your account.</p>
		<a href="%s" class="btn">Verify Email</a>
	`, name, link)

	go SendEmail([]string{email}, subject, getEmailTemplate("Verify your email", body))
}

// 2. Password reset link
func SendPasswordResetEmail(email, name, token string) {
	subject := "Reset your password"
	link := fmt.Sprintf("%s/user/resetpassword/%s", config.AppConfig.BaseURL, token)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset your password. The link below is valid for one hour.</p>
		<a href="%s" class="btn">Reset Password</a>
		<p>If you did not request this, you can safely ignore this email.</p>
	`, name, link)

	go SendEmail([]string{email}, subject, getEmailTemplate("Reset your password", body))
}

// 3. Enrollment confirmation
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Course Enrollment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in:</p>
		<h3>%s</h3>
		<p>Happy learning!</p>
	`, name, courseTitle)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 4. Account deletion notice
func SendAccountDeletedEmail(email, name string) {
	subject := "Account deleted"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been deleted. We are sorry to see you go.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Account Deleted", body))
}
