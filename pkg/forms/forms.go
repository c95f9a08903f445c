// Package forms 校验联系表单和订阅表单的输入
//
// 校验只产生面向用户的提示结果，不返回 error。
package forms

import (
	"regexp"
	"strings"
)

// Kind 提示类型
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// 表单标识
const (
	FormContact    = "contact"
	FormNewsletter = "newsletter"
)

// MessageDuration 提示自动消失前的显示时间(秒)
const MessageDuration = 5.0

// 提示文案
const (
	MsgContactMissingFields = "Please fill in all fields"
	MsgInvalidEmail         = "Please enter a valid email address"
	MsgContactSuccess       = "Thank you for your message! We'll get back to you soon."
	MsgNewsletterMissing    = "Please enter your email address"
	MsgNewsletterSuccess    = "Thank you for subscribing! You'll receive our latest updates."
)

// emailPattern 宽松的邮箱格式：非空白非@ + @ + 非空白非@ + . + 非空白非@
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result 一次提交的校验结果
type Result struct {
	Form    string
	Kind    Kind
	Message string
}

// OK 返回提交是否通过校验
func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

// ContactSubmission 联系表单内容
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}

// IsEmail 检查字符串是否符合邮箱格式
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateContact 校验联系表单：三个字段都必须填写，邮箱需符合格式
func ValidateContact(s ContactSubmission) Result {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return Result{Form: FormContact, Kind: KindError, Message: MsgContactMissingFields}
	}
	if !IsEmail(s.Email) {
		return Result{Form: FormContact, Kind: KindError, Message: MsgInvalidEmail}
	}
	return Result{Form: FormContact, Kind: KindSuccess, Message: MsgContactSuccess}
}

// ValidateNewsletter 校验订阅邮箱，前后空白会被去掉
func ValidateNewsletter(email string) Result {
	email = strings.TrimSpace(email)
	if email == "" {
		return Result{Form: FormNewsletter, Kind: KindError, Message: MsgNewsletterMissing}
	}
	if !IsEmail(email) {
		return Result{Form: FormNewsletter, Kind: KindError, Message: MsgInvalidEmail}
	}
	return Result{Form: FormNewsletter, Kind: KindSuccess, Message: MsgNewsletterSuccess}
}
