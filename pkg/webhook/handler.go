package webhook

import (
	"context"
	"io"
	"log"
	"net/http"
)

// DefaultSignatureHeader 支付平台放签名的请求头
const DefaultSignatureHeader = "X-Razorpay-Signature"

// Mailer 向买家发送交付邮件
type Mailer interface {
	SendFulfillment(ctx context.Context, to string) error
}

// Handler 付款回调 HTTP 处理器
//
// 签名通过且邮件发出返回 200；签名缺失或不符、请求体无法读取返回 400；
// 已签名的请求体无法解析、缺少买家邮箱或发信失败返回 500；非 POST 返回 405。
// 每个请求最多发一封邮件，不重试。
type Handler struct {
	secret       string
	header       string
	maxBodyBytes int64
	mailer       Mailer
}

// Option 配置 Handler
type Option func(*Handler)

// WithSignatureHeader 指定签名请求头
func WithSignatureHeader(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.header = name
		}
	}
}

// WithMaxBodyBytes 限制请求体大小
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler 创建回调处理器
func NewHandler(secret string, mailer Mailer, opts ...Option) *Handler {
	h := &Handler{
		secret:       secret,
		header:       DefaultSignatureHeader,
		maxBodyBytes: 1 << 20,
		mailer:       mailer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP 实现 http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		log.Printf("[Webhook] Failed to read body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// 签名覆盖原始字节，必须在解析之前校验
	if err := VerifySignature(body, r.Header.Get(h.header), h.secret); err != nil {
		log.Printf("[Webhook] Signature check failed: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// 签名通过后的失败一律返回 500
	ev, email, err := ParseEvent(body)
	if err != nil {
		log.Printf("[Webhook] Cannot fulfil signed payload: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.mailer.SendFulfillment(r.Context(), email); err != nil {
		log.Printf("[Webhook] Mailer error for payment %s: %v", ev.Payload.Payment.Entity.ID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Printf("[Webhook] Fulfillment mail sent for payment %s", ev.Payload.Payment.Entity.ID)
	w.WriteHeader(http.StatusOK)
}
