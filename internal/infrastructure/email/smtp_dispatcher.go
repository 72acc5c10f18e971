package email

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"contractor_crm/internal/usecase/interfaces"
)

// SMTPDispatcher sends estimate emails over plain SMTP. In mock mode it logs
// the message instead; local runs stay free of an outbound mail dependency.
//
// Supported env vars:
//   - SMTP_HOST (default: localhost)
//   - SMTP_PORT (default: 1025, the mailpit default)
//   - SMTP_FROM (default: estimates@localhost)
//   - CLIENT_VIEW_BASE_URL (default: http://localhost:8080/v1/client/estimates)
//   - EMAIL_MOCK (1/true/yes/on enables mock mode)
type SMTPDispatcher struct {
	host     string
	port     string
	from     string
	baseURL  string
	mockMode bool
}

var _ interfaces.IEmailDispatcher = (*SMTPDispatcher)(nil)

func NewSMTPDispatcher() *SMTPDispatcher {
	return &SMTPDispatcher{
		host:     getenvDefault("SMTP_HOST", "localhost"),
		port:     getenvDefault("SMTP_PORT", "1025"),
		from:     getenvDefault("SMTP_FROM", "estimates@localhost"),
		baseURL:  getenvDefault("CLIENT_VIEW_BASE_URL", "http://localhost:8080/v1/client/estimates"),
		mockMode: isEmailMockEnabled(),
	}
}

func (d *SMTPDispatcher) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	link := fmt.Sprintf("%s/%s", strings.TrimRight(d.baseURL, "/"), msg.Token)

	if d.mockMode {
		log.Printf("[email][dispatcher] mock send to=%s subject=%q link=%s", msg.To, msg.Subject, link)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := append([]string{msg.To}, msg.CC...)
	body := buildMessage(d.from, msg, link)

	addr := d.host + ":" + d.port
	if err := smtp.SendMail(addr, nil, d.from, recipients, body); err != nil {
		log.Printf("[email][dispatcher] send failed to=%s err=%v", msg.To, err)
		return err
	}
	log.Printf("[email][dispatcher] sent to=%s subject=%q", msg.To, msg.Subject)
	return nil
}

func buildMessage(from string, msg interfaces.EmailMessage, link string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if len(msg.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(msg.CC, ", "))
	}
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	if msg.ToName != "" {
		fmt.Fprintf(&b, "Hi %s,\r\n\r\n", msg.ToName)
	}
	if msg.Body != "" {
		b.WriteString(msg.Body)
		b.WriteString("\r\n\r\n")
	}
	fmt.Fprintf(&b, "Review your estimate here: %s\r\n", link)
	return []byte(b.String())
}

func isEmailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
