package service

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"verify-server/util"
)

type EmailService struct {
	dialer *gomail.Dialer
	sender string
}

func NewEmailService() *EmailService {
	// Read from .env
	host := util.GetEnv("SMTP_HOST", "smtp.163.com")
	portStr := util.GetEnv("SMTP_PORT", "465")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	sender := util.GetEnv("SMTP_SENDER_NAME", "Verify Service")

	port, _ := strconv.Atoi(portStr)

	dialer := gomail.NewDialer(host, port, user, pass)

	// Port 465 speaks implicit TLS rather than STARTTLS
	dialer.SSL = port == 465
	dialer.TLSConfig = &tls.Config{ServerName: host}

	return &EmailService{
		dialer: dialer,
		sender: sender,
	}
}

// Dispatch sends one message and returns its Message-ID as the delivery
// receipt. One attempt only; whether to retry is the caller's decision.
func (s *EmailService) Dispatch(to, subject, body string) (string, error) {
	m := gomail.NewMessage()
	msgID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.dialer.Host)

	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.sender, s.dialer.Username))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", msgID)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", err
	}
	return msgID, nil
}

// VerifyCodeBody renders the verification mail for a code.
func VerifyCodeBody(code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<p>Your verification code is:</p>
			<h1 style="color: #2d89ef; letter-spacing: 5px;">%s</h1>
			<p>Use it to verify your email and complete your registration.</p>
			<p>This code will expire in 5 minutes.</p>
			<p>If you did not request this, please ignore this email.</p>
		</div>
	`, code)
}
