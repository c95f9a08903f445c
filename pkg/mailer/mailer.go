// Package mailer 通过 SMTP 发送付款后的资源交付邮件
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/gonewx/webaddicted/pkg/config"
)

var fulfillmentTemplate = template.Must(template.New("fulfillment").Parse(`Hello,<br><br>
Thank you for your payment! <br>
Here's your resource link:<br><br>
&#128073; <a href="{{.ResourceURL}}">Download Here</a><br><br>
Regards,<br>
Team {{.FromName}}`))

const plainTemplate = `Hello,

Thank you for your payment!
Here's your resource link: %s

Regards,
Team %s
`

// sender 由 *mail.Client 实现
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer 实现 webhook.Mailer
type SMTPMailer struct {
	mail   config.MailConfig
	client sender
}

// New 根据配置创建 SMTP 客户端
func New(smtp config.SMTPConfig, mailCfg config.MailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(smtp.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(smtp.Username),
		mail.WithPassword(smtp.Password),
	}
	if smtp.SSL {
		opts = append(opts, mail.WithSSL())
	}
	if smtp.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(smtp.Timeout))
	}

	client, err := mail.NewClient(smtp.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client for %s: %w", smtp.Host, err)
	}
	return &SMTPMailer{mail: mailCfg, client: client}, nil
}

// BuildMessage 构造发给 to 的交付邮件（HTML 正文 + 纯文本备选）
func (m *SMTPMailer) BuildMessage(to string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.mail.FromName, m.mail.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", m.mail.From, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(m.mail.Subject)
	msg.SetDate()

	html, err := RenderBody(m.mail)
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextHTML, html)
	msg.AddAlternativeString(mail.TypeTextPlain, fmt.Sprintf(plainTemplate, m.mail.ResourceURL, m.mail.FromName))
	return msg, nil
}

// SendFulfillment 发送一封交付邮件，失败不重试
func (m *SMTPMailer) SendFulfillment(ctx context.Context, to string) error {
	msg, err := m.BuildMessage(to)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send fulfillment mail: %w", err)
	}
	log.Printf("[Mailer] Sent fulfillment mail in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// RenderBody 渲染 HTML 正文
func RenderBody(cfg config.MailConfig) (string, error) {
	var buf bytes.Buffer
	if err := fulfillmentTemplate.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("failed to render mail body: %w", err)
	}
	return buf.String(), nil
}
