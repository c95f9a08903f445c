// Package app 提供站点应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/webaddicted/pkg/config"
	"github.com/gonewx/webaddicted/pkg/game"
	"github.com/gonewx/webaddicted/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SiteConfigPath 站点配置文件路径，为空时使用内置配置
	SiteConfigPath string
}

// App 是站点应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	siteConfig   *config.SiteConfig
	verbose      bool
}

// NewApp 创建并初始化站点应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	siteConfig, err := loadSiteConfig(cfg.SiteConfigPath)
	if err != nil {
		return nil, err
	}

	// 存储不可用时降级为仅内存的主题设置
	storage, err := game.OpenStorage(game.StorageAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (theme will not be remembered)", err)
		storage = nil
	}
	settings := game.NewSettingsManager(storage, siteConfig.Theme.Default)

	landing, err := scenes.NewLandingScene(siteConfig, settings, ebiten.TPS())
	if err != nil {
		return nil, fmt.Errorf("页面初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(landing)

	log.Printf("[App] Site %q loaded: %d sections", siteConfig.Window.Title, len(siteConfig.Sections))
	return &App{
		sceneManager: sceneManager,
		siteConfig:   siteConfig,
		verbose:      cfg.Verbose,
	}, nil
}

func loadSiteConfig(path string) (*config.SiteConfig, error) {
	if path == "" {
		return config.LoadSiteConfig()
	}
	log.Printf("[App] Loading site config from %s", path)
	return config.LoadSiteConfigFile(path)
}

// Update 更新页面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制页面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸与窗口尺寸一致，页面按视口宽度响应式布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// WindowConfig 返回站点配置中的窗口标题和初始尺寸
func (a *App) WindowConfig() config.WindowConfig {
	return a.siteConfig.Window
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
