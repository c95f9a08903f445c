package forms

import "testing"

func TestIsEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"a.b+c@mail.co.in", true},
		{"user@localhost", false},
		{"user example@mail.com", false},
		{"@example.com", false},
		{"user@@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEmail(tt.input); got != tt.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestValidateContact 测试联系表单校验
func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		input   ContactSubmission
		kind    Kind
		message string
	}{
		{
			name:    "字段齐全",
			input:   ContactSubmission{Name: "Rahul", Email: "rahul@example.com", Message: "Hi"},
			kind:    KindSuccess,
			message: MsgContactSuccess,
		},
		{
			name:    "缺少姓名",
			input:   ContactSubmission{Email: "rahul@example.com", Message: "Hi"},
			kind:    KindError,
			message: MsgContactMissingFields,
		},
		{
			name:    "缺少留言",
			input:   ContactSubmission{Name: "Rahul", Email: "rahul@example.com"},
			kind:    KindError,
			message: MsgContactMissingFields,
		},
		{
			name:    "邮箱格式错误",
			input:   ContactSubmission{Name: "Rahul", Email: "rahul.example.com", Message: "Hi"},
			kind:    KindError,
			message: MsgInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateContact(tt.input)
			if got.Kind != tt.kind || got.Message != tt.message {
				t.Errorf("ValidateContact() = %+v, want kind=%s message=%q", got, tt.kind, tt.message)
			}
			if got.Form != FormContact {
				t.Errorf("Form = %q, want %q", got.Form, FormContact)
			}
			if got.OK() != (tt.kind == KindSuccess) {
				t.Errorf("OK() = %v", got.OK())
			}
		})
	}
}

func TestValidateNewsletter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    Kind
		message string
	}{
		{"有效邮箱", "fan@example.com", KindSuccess, MsgNewsletterSuccess},
		{"前后空白被去掉", "  fan@example.com \n", KindSuccess, MsgNewsletterSuccess},
		{"空白输入", "   ", KindError, MsgNewsletterMissing},
		{"格式错误", "fan@example", KindError, MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNewsletter(tt.input)
			if got.Kind != tt.kind || got.Message != tt.message {
				t.Errorf("ValidateNewsletter(%q) = %+v, want kind=%s message=%q", tt.input, got, tt.kind, tt.message)
			}
		})
	}
}
