// Package webhook 处理支付平台的付款回调：校验签名、提取买家邮箱、发送交付邮件
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	// ErrMissingSignature 请求没有签名头
	ErrMissingSignature = errors.New("webhook: missing signature")
	// ErrSignatureMismatch 签名与请求体不符
	ErrSignatureMismatch = errors.New("webhook: signature mismatch")
)

// ComputeSignature 返回 body 的 HMAC-SHA256 小写十六进制摘要
func ComputeSignature(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature 以常量时间逐字节比较签名
// 请求头原样参与比较，大写或带空白的签名都视为不符
func VerifySignature(body []byte, signature, secret string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	expected := ComputeSignature(body, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
