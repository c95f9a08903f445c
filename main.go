// Package main 是 WebAddicted 落地页的桌面入口
//
// 用法:
//
//	go run . [--verbose] [--config site.yaml]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/webaddicted/pkg/app"
	"github.com/gonewx/webaddicted/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "站点配置文件路径（默认使用内置 data/site.yaml）")
	flag.Parse()

	embedded.Init(dataFS)

	site, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		SiteConfigPath: *configPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	window := site.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(site); err != nil {
		log.Fatal(err)
	}
}
