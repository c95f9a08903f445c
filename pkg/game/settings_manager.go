package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 主题名与对应的切换按钮图标
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	IconSun  = "sun"
	IconMoon = "moon"
)

// SiteSettings 访客的站点偏好
// 只持久化主题一项
type SiteSettings struct {
	Theme string `yaml:"theme"` // "light" / "dark"，空表示从未选择过
}

// SettingsManager 设置管理器
// 负责主题偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *SiteSettings
	defaultTheme string
	current      string // 正在使用的主题
}

// 存储路径常量，对应浏览器 localStorage 中的 "theme" 键
const (
	settingsObject   = "settings"
	settingsProperty = "theme"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaultTheme: 没有保存的主题且系统无深色偏好时使用的主题
func NewSettingsManager(gdataManager *gdata.Manager, defaultTheme string) *SettingsManager {
	if defaultTheme != ThemeDark {
		defaultTheme = ThemeLight
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     &SiteSettings{},
		defaultTheme: defaultTheme,
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置，保存的主题无效时视为未保存
func (sm *SettingsManager) Load() error {
	sm.settings = &SiteSettings{}

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded SiteSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.Theme != ThemeLight && loaded.Theme != ThemeDark {
		return fmt.Errorf("unknown saved theme %q", loaded.Theme)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded, theme=%s", loaded.Theme)
	return nil
}

// Save 保存设置到 gdata，降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved, theme=%s", sm.settings.Theme)
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *SiteSettings {
	return sm.settings
}

// InitTheme 确定启动时的主题：已保存的主题优先，
// 其次系统偏好深色时用深色，最后用默认主题。不写存储。
func (sm *SettingsManager) InitTheme(prefersDark bool) string {
	switch {
	case sm.settings.Theme != "":
		sm.current = sm.settings.Theme
	case prefersDark:
		sm.current = ThemeDark
	default:
		sm.current = sm.defaultTheme
	}
	return sm.current
}

// Theme 返回当前主题，InitTheme 之前为默认主题
func (sm *SettingsManager) Theme() string {
	if sm.current == "" {
		return sm.defaultTheme
	}
	return sm.current
}

// ToggleTheme 在明暗主题间切换并持久化，返回新主题
// 保存失败时主题仍然切换，错误仅用于记录
func (sm *SettingsManager) ToggleTheme() (string, error) {
	next := ThemeDark
	if sm.Theme() == ThemeDark {
		next = ThemeLight
	}
	sm.current = next
	sm.settings.Theme = next
	return next, sm.Save()
}

// ThemeIcon 返回切换按钮的图标：深色主题显示太阳，浅色主题显示月亮
func (sm *SettingsManager) ThemeIcon() string {
	if sm.Theme() == ThemeDark {
		return IconSun
	}
	return IconMoon
}
