package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestInitTheme(t *testing.T) {
	tests := []struct {
		name         string
		saved        string
		defaultTheme string
		prefersDark  bool
		want         string
		wantIcon     string
	}{
		{"saved dark wins over light preference", ThemeDark, ThemeLight, false, ThemeDark, IconSun},
		{"saved light wins over dark preference", ThemeLight, ThemeLight, true, ThemeLight, IconMoon},
		{"dark preference without saved theme", "", ThemeLight, true, ThemeDark, IconSun},
		{"default theme without preference", "", ThemeLight, false, ThemeLight, IconMoon},
		{"configured dark default", "", ThemeDark, false, ThemeDark, IconSun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil, tt.defaultTheme)
			sm.settings.Theme = tt.saved

			if got := sm.InitTheme(tt.prefersDark); got != tt.want {
				t.Errorf("InitTheme() = %s, want %s", got, tt.want)
			}
			if got := sm.ThemeIcon(); got != tt.wantIcon {
				t.Errorf("ThemeIcon() = %s, want %s", got, tt.wantIcon)
			}
		})
	}
}

// TestInitThemeDoesNotPersist 系统偏好不会被当作用户选择保存
func TestInitThemeDoesNotPersist(t *testing.T) {
	manager := openTestGdata(t, "test_init_theme")

	sm := NewSettingsManager(manager, ThemeLight)
	sm.InitTheme(true)

	if manager.ObjectPropExists(settingsObject, settingsProperty) {
		t.Error("InitTheme() should not write to storage")
	}
	if sm.GetSettings().Theme != "" {
		t.Errorf("saved theme = %q, want empty", sm.GetSettings().Theme)
	}
}

// TestToggleThemePersists 切换后的主题在下次启动时恢复
func TestToggleThemePersists(t *testing.T) {
	manager := openTestGdata(t, "test_toggle_theme")

	sm1 := NewSettingsManager(manager, ThemeLight)
	sm1.InitTheme(false)

	theme, err := sm1.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme() error: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("ToggleTheme() = %s, want dark", theme)
	}

	sm2 := NewSettingsManager(manager, ThemeLight)
	if got := sm2.InitTheme(false); got != ThemeDark {
		t.Errorf("restored theme = %s, want dark", got)
	}

	if theme, _ := sm2.ToggleTheme(); theme != ThemeLight {
		t.Errorf("second toggle = %s, want light", theme)
	}
}

// TestInvalidSavedTheme 无效的保存值被忽略
func TestInvalidSavedTheme(t *testing.T) {
	manager := openTestGdata(t, "test_invalid_theme")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("theme: sepia\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(manager, ThemeLight)
	if err := sm.Load(); err == nil {
		t.Error("Load() should reject unknown theme")
	}
	if got := sm.InitTheme(false); got != ThemeLight {
		t.Errorf("InitTheme() = %s, want light", got)
	}
}

// TestNilGdataToggle 降级模式下切换只在内存中生效
func TestNilGdataToggle(t *testing.T) {
	sm := NewSettingsManager(nil, ThemeLight)

	if sm.Theme() != ThemeLight {
		t.Errorf("Theme() before init = %s, want light", sm.Theme())
	}
	theme, err := sm.ToggleTheme()
	if err != nil {
		t.Errorf("ToggleTheme() in degraded mode error: %v", err)
	}
	if theme != ThemeDark || sm.ThemeIcon() != IconSun {
		t.Errorf("theme = %s icon = %s", theme, sm.ThemeIcon())
	}
}
