package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingSecret 回调密钥或 SMTP 密码未配置
var ErrMissingSecret = errors.New("webhook secret and SMTP password must be set via environment")

// 环境变量名
const (
	EnvWebhookSecret = "WEBHOOK_SECRET"
	EnvSMTPHost      = "SMTP_HOST"
	EnvSMTPPort      = "SMTP_PORT"
	EnvSMTPUsername  = "SMTP_USERNAME"
	EnvSMTPPassword  = "SMTP_PASSWORD"
	EnvMailFrom      = "MAIL_FROM"
	EnvResourceURL   = "RESOURCE_URL"
)

// WebhookConfig 支付回调服务配置
// Secret 和 SMTP.Password 不从 YAML 读取
type WebhookConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`
	Path            string        `yaml:"path"`
	SignatureHeader string        `yaml:"signature_header"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`

	SMTP SMTPConfig `yaml:"smtp"`
	Mail MailConfig `yaml:"mail"`

	Secret string `yaml:"-"`
}

// SMTPConfig 发信服务器
type SMTPConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	SSL      bool          `yaml:"ssl"`
	Username string        `yaml:"username"`
	Timeout  time.Duration `yaml:"timeout"`

	Password string `yaml:"-"`
}

// MailConfig 交付邮件内容
type MailConfig struct {
	From        string `yaml:"from"`
	FromName    string `yaml:"from_name"`
	Subject     string `yaml:"subject"`
	ResourceURL string `yaml:"resource_url"`
}

// DefaultWebhookConfig 返回默认配置（不含密钥）
func DefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{
		ListenAddr:      ":8080",
		Path:            "/webhook/razorpay",
		SignatureHeader: "X-Razorpay-Signature",
		MaxBodyBytes:    1 << 20,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		SMTP: SMTPConfig{
			Port:    465,
			SSL:     true,
			Timeout: 20 * time.Second,
		},
		Mail: MailConfig{
			FromName: "WebAddicted",
			Subject:  "Your Resources from WebAddicted..! ",
		},
	}
}

// LoadWebhookConfig 读取 YAML 配置（path 为空时只用默认值），再应用环境变量覆盖
func LoadWebhookConfig(path string) (*WebhookConfig, error) {
	cfg := DefaultWebhookConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read webhook config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse webhook config YAML from %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid webhook config: %w", err)
	}
	return &cfg, nil
}

// applyEnv 用环境变量覆盖配置，lookup 便于测试注入
func (cfg *WebhookConfig) applyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvWebhookSecret, &cfg.Secret},
		{EnvSMTPHost, &cfg.SMTP.Host},
		{EnvSMTPUsername, &cfg.SMTP.Username},
		{EnvSMTPPassword, &cfg.SMTP.Password},
		{EnvMailFrom, &cfg.Mail.From},
		{EnvResourceURL, &cfg.Mail.ResourceURL},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvSMTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSMTPPort, v, err)
		}
		cfg.SMTP.Port = port
	}
	return nil
}

// Validate 校验配置，缺少密钥时返回 ErrMissingSecret
func (cfg *WebhookConfig) Validate() error {
	if cfg.Secret == "" || cfg.SMTP.Password == "" {
		return ErrMissingSecret
	}
	if cfg.SMTP.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if cfg.SMTP.Port <= 0 || cfg.SMTP.Port > 65535 {
		return fmt.Errorf("smtp port must be between 1 and 65535, got %d", cfg.SMTP.Port)
	}
	if cfg.Mail.From == "" {
		return fmt.Errorf("mail from address is required")
	}
	if cfg.Mail.ResourceURL == "" {
		return fmt.Errorf("mail resource_url is required")
	}
	if cfg.SignatureHeader == "" {
		return fmt.Errorf("signature_header is required")
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", cfg.MaxBodyBytes)
	}
	return nil
}
