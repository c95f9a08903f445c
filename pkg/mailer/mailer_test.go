package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wneessen/go-mail"

	"github.com/gonewx/webaddicted/pkg/config"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (s *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, messages...)
	return nil
}

func testMailConfig() config.MailConfig {
	return config.MailConfig{
		From:        "shop@example.com",
		FromName:    "WebAddicted",
		Subject:     "Your Resources from WebAddicted..! ",
		ResourceURL: "https://example.com/resources?id=1&x=2",
	}
}

func TestRenderBody(t *testing.T) {
	body, err := RenderBody(testMailConfig())
	if err != nil {
		t.Fatalf("RenderBody() failed: %v", err)
	}
	if !strings.Contains(body, `href="https://example.com/resources?id=1&amp;x=2"`) {
		t.Errorf("resource link not rendered: %s", body)
	}
	if !strings.Contains(body, "Team WebAddicted") {
		t.Errorf("signature missing: %s", body)
	}
}

// TestRenderBodyEscapesURL 资源链接中的脚本被转义
func TestRenderBodyEscapesURL(t *testing.T) {
	cfg := testMailConfig()
	cfg.ResourceURL = "javascript:alert(1)"

	body, err := RenderBody(cfg)
	if err != nil {
		t.Fatalf("RenderBody() failed: %v", err)
	}
	if strings.Contains(body, "javascript:") {
		t.Errorf("unsafe URL was not sanitized: %s", body)
	}
}

func TestBuildMessage(t *testing.T) {
	m := &SMTPMailer{mail: testMailConfig()}

	msg, err := m.BuildMessage("buyer@example.com")
	if err != nil {
		t.Fatalf("BuildMessage() failed: %v", err)
	}

	rcpts, err := msg.GetRecipients()
	if err != nil {
		t.Fatalf("GetRecipients() failed: %v", err)
	}
	if len(rcpts) != 1 || rcpts[0] != "buyer@example.com" {
		t.Errorf("recipients = %v", rcpts)
	}
	if subject := msg.GetGenHeader(mail.HeaderSubject); len(subject) != 1 || subject[0] != testMailConfig().Subject {
		t.Errorf("subject = %v", subject)
	}

	if _, err := m.BuildMessage("not an address"); err == nil {
		t.Error("Expected error for invalid recipient")
	}
}

func TestSendFulfillment(t *testing.T) {
	sender := &fakeSender{}
	m := &SMTPMailer{mail: testMailConfig(), client: sender}

	if err := m.SendFulfillment(context.Background(), "buyer@example.com"); err != nil {
		t.Fatalf("SendFulfillment() failed: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}

	smtpErr := errors.New("connection refused")
	m.client = &fakeSender{err: smtpErr}
	if err := m.SendFulfillment(context.Background(), "buyer@example.com"); !errors.Is(err, smtpErr) {
		t.Errorf("Expected wrapped SMTP error, got %v", err)
	}
}

func TestNew(t *testing.T) {
	m, err := New(config.SMTPConfig{Host: "smtp.example.com", Port: 465, SSL: true, Username: "u", Password: "p"}, testMailConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if m.client == nil {
		t.Error("Expected SMTP client")
	}

	if _, err := New(config.SMTPConfig{Port: 465}, testMailConfig()); err == nil {
		t.Error("Expected error for empty host")
	}
}
