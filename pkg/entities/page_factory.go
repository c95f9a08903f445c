package entities

import (
	"log"

	"github.com/gonewx/webaddicted/pkg/components"
	"github.com/gonewx/webaddicted/pkg/config"
	"github.com/gonewx/webaddicted/pkg/ecs"
)

// Page 页面工厂创建的关键实体
type Page struct {
	Menu        ecs.EntityID
	Scroll      ecs.EntityID
	ThemeButton ecs.EntityID
	BackToTop   ecs.EntityID

	Sections []ecs.EntityID
	Cards    []ecs.EntityID
	FAQ      []ecs.EntityID
	Inputs   []ecs.EntityID
}

// NewPage 根据站点配置创建页面的全部实体
//
// 实体按页面顺序创建，依赖创建顺序的查询（导航链接、卡片错峰延迟、
// Tab 焦点顺序）因此与配置文件中的顺序一致。
// 所有位置都由 LayoutSystem 在第一帧计算，这里只添加空的 BoundsComponent。
func NewPage(em *ecs.EntityManager, cfg *config.SiteConfig) *Page {
	page := &Page{}

	page.Scroll = em.CreateEntity()
	em.AddComponent(page.Scroll, &components.ScrollComponent{})

	page.Menu = em.CreateEntity()
	em.AddComponent(page.Menu, &components.NavMenuComponent{})

	for _, link := range cfg.Nav.Links {
		NewNavLink(em, link)
	}

	page.ThemeButton = newFixedButton(em, components.ButtonThemeToggle, "theme", true)
	newFixedButton(em, components.ButtonHamburger, "menu", false)

	page.BackToTop = newFixedButton(em, components.ButtonBackToTop, "top", false)
	em.AddComponent(page.BackToTop, &components.BackToTopComponent{})

	for _, section := range cfg.Sections {
		page.Sections = append(page.Sections, NewSection(em, section))

		for _, card := range section.Cards {
			page.Cards = append(page.Cards, NewCard(em, section.ID, card))
		}
		for _, faq := range section.FAQ {
			page.FAQ = append(page.FAQ, NewFAQItem(em, section.ID, faq))
		}
		if section.Form != nil {
			page.Inputs = append(page.Inputs, NewForm(em, section.ID, section.Form)...)
		}
	}

	log.Printf("[PageFactory] Created page: %d sections, %d cards, %d FAQ items, %d inputs",
		len(page.Sections), len(page.Cards), len(page.FAQ), len(page.Inputs))
	return page
}

// NewNavLink 创建导航链接实体
func NewNavLink(em *ecs.EntityManager, link config.NavLinkConfig) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.NavLinkComponent{Label: link.Label, Href: link.Href})
	em.AddComponent(id, &components.BoundsComponent{})
	return id
}

func newFixedButton(em *ecs.EntityManager, action components.ButtonAction, label string, enabled bool) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ButtonComponent{
		Action:  action,
		Label:   label,
		Fixed:   true,
		Enabled: enabled,
	})
	em.AddComponent(id, &components.BoundsComponent{})
	return id
}

// NewSection 创建区块实体
func NewSection(em *ecs.EntityManager, section config.SectionConfig) ecs.EntityID {
	form := ""
	if section.Form != nil {
		form = section.Form.ID
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.SectionComponent{
		ID:       section.ID,
		Title:    section.Title,
		Subtitle: section.Subtitle,
		Form:     form,
	})
	em.AddComponent(id, &components.BoundsComponent{})
	return id
}

// NewCard 创建卡片实体，配置了彩纸触发时附加 ConfettiTriggerComponent
func NewCard(em *ecs.EntityManager, sectionID string, card config.CardConfig) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.CardComponent{
		Section: sectionID,
		Kind:    card.Kind,
		Title:   card.Title,
		Body:    card.Body,
	})
	em.AddComponent(id, &components.BoundsComponent{})
	em.AddComponent(id, &components.RevealComponent{})

	if card.Confetti.Any() {
		em.AddComponent(id, &components.ConfettiTriggerComponent{
			OnClick:   card.Confetti.OnClick,
			OnHover:   card.Confetti.OnHover,
			OnVisible: card.Confetti.OnVisible,
		})
	}
	return id
}

// NewFAQItem 创建问答项实体，初始为收起状态
func NewFAQItem(em *ecs.EntityManager, sectionID string, faq config.FAQConfig) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.FAQItemComponent{
		Section:  sectionID,
		Question: faq.Question,
		Answer:   faq.Answer,
	})
	em.AddComponent(id, &components.BoundsComponent{})
	return id
}

// NewForm 创建表单的输入框和提交按钮，返回输入框实体
func NewForm(em *ecs.EntityManager, sectionID string, form *config.FormConfig) []ecs.EntityID {
	inputs := make([]ecs.EntityID, 0, len(form.Fields))
	for _, field := range form.Fields {
		id := em.CreateEntity()
		em.AddComponent(id, &components.TextInputComponent{
			Section:     sectionID,
			Form:        form.ID,
			Field:       field.Name,
			Placeholder: field.Placeholder,
			MaxLength:   field.MaxLength,
			Multiline:   field.Multiline,
		})
		em.AddComponent(id, &components.BoundsComponent{})
		inputs = append(inputs, id)
	}

	label := form.Submit
	if label == "" {
		label = "Submit"
	}
	submit := em.CreateEntity()
	em.AddComponent(submit, &components.ButtonComponent{
		Action:  components.ButtonSubmit,
		Form:    form.ID,
		Label:   label,
		Enabled: true,
	})
	em.AddComponent(submit, &components.BoundsComponent{})
	return inputs
}
