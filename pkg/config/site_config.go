package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/webaddicted/pkg/confetti"
	"github.com/gonewx/webaddicted/pkg/embedded"
)

// SiteConfigPath 嵌入的站点配置路径
const SiteConfigPath = "data/site.yaml"

// 主题名
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SiteConfig 站点内容与外观配置
type SiteConfig struct {
	Window   WindowConfig    `yaml:"window"`
	Theme    ThemeConfig     `yaml:"theme"`
	Confetti ConfettiConfig  `yaml:"confetti"`
	Nav      NavConfig       `yaml:"nav"`
	Sections []SectionConfig `yaml:"sections"`
}

// WindowConfig 窗口标题和初始尺寸
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ThemeConfig 明暗两套配色，Default 在没有保存的主题且系统无偏好时使用
type ThemeConfig struct {
	Default string      `yaml:"default"`
	Light   ColorScheme `yaml:"light"`
	Dark    ColorScheme `yaml:"dark"`
}

// ColorScheme 一套主题颜色（十六进制）
type ColorScheme struct {
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
	Success    string `yaml:"success"`
	Error      string `yaml:"error"`
}

// ConfettiConfig 彩纸默认粒子数和调色板，调色板为空时使用内置调色板
type ConfettiConfig struct {
	DefaultCount int      `yaml:"default_count"`
	Palette      []string `yaml:"palette"`
}

// NavConfig 导航栏
type NavConfig struct {
	Brand string          `yaml:"brand"`
	Links []NavLinkConfig `yaml:"links"`
}

// NavLinkConfig 导航链接，Href 形如 "#faq"
type NavLinkConfig struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// SectionConfig 页面区块，可包含卡片、问答或表单
type SectionConfig struct {
	ID       string       `yaml:"id"`
	Title    string       `yaml:"title"`
	Subtitle string       `yaml:"subtitle"`
	Cards    []CardConfig `yaml:"cards"`
	FAQ      []FAQConfig  `yaml:"faq"`
	Form     *FormConfig  `yaml:"form"`
}

// CardConfig 卡片内容与彩纸触发方式
type CardConfig struct {
	Kind     string        `yaml:"kind"`
	Title    string        `yaml:"title"`
	Body     string        `yaml:"body"`
	Confetti TriggerConfig `yaml:"confetti"`
}

// TriggerConfig 卡片的彩纸触发方式
type TriggerConfig struct {
	OnClick   bool `yaml:"on_click"`
	OnHover   bool `yaml:"on_hover"`
	OnVisible bool `yaml:"on_visible"`
}

// Any 返回是否配置了任何触发方式
func (t TriggerConfig) Any() bool {
	return t.OnClick || t.OnHover || t.OnVisible
}

// FAQConfig 问答项
type FAQConfig struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// FormConfig 表单，ID 为 "contact" 或 "newsletter"
type FormConfig struct {
	ID     string        `yaml:"id"`
	Submit string        `yaml:"submit"`
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig 表单字段
type FieldConfig struct {
	Name        string `yaml:"name"`
	Placeholder string `yaml:"placeholder"`
	MaxLength   int    `yaml:"max_length"`
	Multiline   bool   `yaml:"multiline"`
}

// formFields 每个表单必须提供的字段
var formFields = map[string][]string{
	"contact":    {"name", "email", "message"},
	"newsletter": {"email"},
}

// LoadSiteConfig 从嵌入资源加载站点配置
func LoadSiteConfig() (*SiteConfig, error) {
	data, err := embedded.ReadFile(SiteConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", SiteConfigPath, err)
	}
	return ParseSiteConfig(data)
}

// LoadSiteConfigFile 从磁盘加载站点配置，用于 --config 覆盖内置内容
func LoadSiteConfigFile(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", path, err)
	}
	cfg, err := ParseSiteConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseSiteConfig 解析并校验站点配置
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config YAML: %w", err)
	}

	applySiteDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}
	return &cfg, nil
}

func applySiteDefaults(cfg *SiteConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 800
	}
	if cfg.Theme.Default == "" {
		cfg.Theme.Default = ThemeLight
	}
	if cfg.Confetti.DefaultCount == 0 {
		cfg.Confetti.DefaultCount = confetti.DefaultCount
	}
}

// Validate 校验配置的完整性
func (cfg *SiteConfig) Validate() error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Theme.Default != ThemeLight && cfg.Theme.Default != ThemeDark {
		return fmt.Errorf("theme default must be one of: light, dark, got %q", cfg.Theme.Default)
	}
	if cfg.Confetti.DefaultCount < 0 {
		return fmt.Errorf("confetti default_count cannot be negative, got %d", cfg.Confetti.DefaultCount)
	}
	if len(cfg.Confetti.Palette) > 0 {
		if _, err := confetti.ParsePalette(cfg.Confetti.Palette); err != nil {
			return fmt.Errorf("confetti palette: %w", err)
		}
	}

	sectionIDs := make(map[string]bool, len(cfg.Sections))
	for i, section := range cfg.Sections {
		if section.ID == "" {
			return fmt.Errorf("section %d: id is required", i)
		}
		if sectionIDs[section.ID] {
			return fmt.Errorf("section %d: duplicate id %q", i, section.ID)
		}
		sectionIDs[section.ID] = true

		if section.Form != nil {
			if err := validateForm(section.Form); err != nil {
				return fmt.Errorf("section %q: %w", section.ID, err)
			}
		}
	}

	for i, link := range cfg.Nav.Links {
		if !strings.HasPrefix(link.Href, "#") {
			return fmt.Errorf("nav link %d: href must start with '#', got %q", i, link.Href)
		}
		if !sectionIDs[strings.TrimPrefix(link.Href, "#")] {
			return fmt.Errorf("nav link %d: no section for href %q", i, link.Href)
		}
	}
	return nil
}

func validateForm(form *FormConfig) error {
	required, ok := formFields[form.ID]
	if !ok {
		return fmt.Errorf("form id must be one of: contact, newsletter, got %q", form.ID)
	}

	have := make(map[string]bool, len(form.Fields))
	for _, field := range form.Fields {
		have[field.Name] = true
	}
	for _, name := range required {
		if !have[name] {
			return fmt.Errorf("form %q: missing field %q", form.ID, name)
		}
	}
	return nil
}

// Scheme 返回主题对应的配色，未知主题返回浅色
func (t ThemeConfig) Scheme(theme string) ColorScheme {
	if theme == ThemeDark {
		return t.Dark
	}
	return t.Light
}
