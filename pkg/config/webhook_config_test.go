package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestWebhookConfigApplyEnv(t *testing.T) {
	cfg := DefaultWebhookConfig()
	err := cfg.applyEnv(envMap(map[string]string{
		EnvWebhookSecret: "s3cret",
		EnvSMTPHost:      "smtp.example.com",
		EnvSMTPPort:      "587",
		EnvSMTPUsername:  "mailer",
		EnvSMTPPassword:  "pw",
		EnvMailFrom:      "shop@example.com",
		EnvResourceURL:   "https://example.com/r",
	}))
	if err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}

	if cfg.Secret != "s3cret" || cfg.SMTP.Password != "pw" {
		t.Error("Expected secrets from environment")
	}
	if cfg.SMTP.Host != "smtp.example.com" || cfg.SMTP.Port != 587 || cfg.SMTP.Username != "mailer" {
		t.Errorf("Unexpected SMTP config: %+v", cfg.SMTP)
	}
	if cfg.Mail.From != "shop@example.com" || cfg.Mail.ResourceURL != "https://example.com/r" {
		t.Errorf("Unexpected mail config: %+v", cfg.Mail)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestWebhookConfigApplyEnvBadPort(t *testing.T) {
	cfg := DefaultWebhookConfig()
	if err := cfg.applyEnv(envMap(map[string]string{EnvSMTPPort: "smtp"})); err == nil {
		t.Error("Expected error for non-numeric port")
	}
}

func TestWebhookConfigValidate(t *testing.T) {
	valid := func() WebhookConfig {
		cfg := DefaultWebhookConfig()
		cfg.Secret = "secret"
		cfg.SMTP.Host = "smtp.example.com"
		cfg.SMTP.Password = "pw"
		cfg.Mail.From = "shop@example.com"
		cfg.Mail.ResourceURL = "https://example.com/r"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*WebhookConfig)
		wantErr error
		anyErr  bool
	}{
		{name: "valid", mutate: func(*WebhookConfig) {}},
		{name: "missing secret", mutate: func(c *WebhookConfig) { c.Secret = "" }, wantErr: ErrMissingSecret},
		{name: "missing password", mutate: func(c *WebhookConfig) { c.SMTP.Password = "" }, wantErr: ErrMissingSecret},
		{name: "missing host", mutate: func(c *WebhookConfig) { c.SMTP.Host = "" }, anyErr: true},
		{name: "bad port", mutate: func(c *WebhookConfig) { c.SMTP.Port = 70000 }, anyErr: true},
		{name: "missing from", mutate: func(c *WebhookConfig) { c.Mail.From = "" }, anyErr: true},
		{name: "missing resource", mutate: func(c *WebhookConfig) { c.Mail.ResourceURL = "" }, anyErr: true},
		{name: "zero body limit", mutate: func(c *WebhookConfig) { c.MaxBodyBytes = 0 }, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("Expected error, got nil")
				}
			default:
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			}
		})
	}
}

// TestLoadWebhookConfigFromFile YAML 中的时长和地址被读取，密钥来自环境变量
func TestLoadWebhookConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webhook.yaml")
	content := `listen_addr: ":9090"
read_timeout: 3s
smtp:
  host: smtp.example.com
  port: 2465
mail:
  from: shop@example.com
  resource_url: https://example.com/r
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	t.Setenv(EnvWebhookSecret, "secret")
	t.Setenv(EnvSMTPPassword, "pw")
	t.Setenv(EnvSMTPPort, "")

	cfg, err := LoadWebhookConfig(path)
	if err != nil {
		t.Fatalf("LoadWebhookConfig() failed: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %s", cfg.ListenAddr)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.SMTP.Port != 2465 {
		t.Errorf("SMTP port = %d", cfg.SMTP.Port)
	}
	if cfg.SignatureHeader != "X-Razorpay-Signature" {
		t.Errorf("SignatureHeader default lost: %q", cfg.SignatureHeader)
	}
}

func TestLoadWebhookConfigMissingSecret(t *testing.T) {
	t.Setenv(EnvWebhookSecret, "")
	t.Setenv(EnvSMTPPassword, "")

	_, err := LoadWebhookConfig("")
	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("Expected ErrMissingSecret, got %v", err)
	}
}
