package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/app"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	fullscreen := flag.Bool("fullscreen", false, "启动时直接进入全屏")
	flag.Parse()

	// 嵌入资源必须在任何配置加载之前注册
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Warrior Survivors")

	// 主菜单的 Exit 按钮通过 ebiten.Termination 结束循环，RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
