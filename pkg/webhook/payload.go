package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPayload 请求体不是合法的回调 JSON
	ErrInvalidPayload = errors.New("webhook: invalid payload")
	// ErrMissingEmail 付款实体中没有买家邮箱
	ErrMissingEmail = errors.New("webhook: payment has no email")
)

// Event 付款回调中用到的字段
type Event struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// PaymentEntity 付款实体
type PaymentEntity struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Email    string `json:"email"`
}

// ParseEvent 解析回调 JSON 并返回买家邮箱
func ParseEvent(body []byte) (*Event, string, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	email := strings.TrimSpace(ev.Payload.Payment.Entity.Email)
	if email == "" {
		return &ev, "", ErrMissingEmail
	}
	return &ev, email, nil
}
