package systems

import (
	"github.com/gonewx/webaddicted/pkg/ecs"
	"github.com/gonewx/webaddicted/pkg/forms"
)

// FormSystem 提交联系表单和订阅表单
type FormSystem struct {
	entityManager *ecs.EntityManager
	inputs        *TextInputSystem
	messages      *MessageSystem
}

// NewFormSystem 创建表单系统
func NewFormSystem(em *ecs.EntityManager, inputs *TextInputSystem, messages *MessageSystem) *FormSystem {
	return &FormSystem{
		entityManager: em,
		inputs:        inputs,
		messages:      messages,
	}
}

// Submit 校验表单并显示结果，通过校验后清空表单
// 未知表单返回 false
func (s *FormSystem) Submit(form string) (forms.Result, bool) {
	values := s.inputs.Values(form)

	var result forms.Result
	switch form {
	case forms.FormContact:
		result = forms.ValidateContact(forms.ContactSubmission{
			Name:    values["name"],
			Email:   values["email"],
			Message: values["message"],
		})
	case forms.FormNewsletter:
		result = forms.ValidateNewsletter(values["email"])
	default:
		return forms.Result{}, false
	}

	s.messages.Show(result)
	if result.OK() {
		s.inputs.Reset(form)
		s.inputs.Focus(0)
	}
	return result, true
}
