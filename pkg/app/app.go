// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，集中完成资源、音频、
// 配置与场景的装配，main 包只负责窗口参数和 RunGame。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/scenes"
	"github.com/gonewx/survivors/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 启动时直接进入全屏
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 设置存储：打开失败进入降级模式，设置仅保存在内存中
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory check failed: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "warrior_survivors"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	// 加载战斗配置，任何一份缺失或非法都视为启动失败
	configs, err := loadGameConfigs()
	if err != nil {
		return nil, err
	}

	// 创建场景管理器，所有场景经工厂按名字创建，每次切换都是全新实例
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.SceneMenu:
			return scenes.NewMainMenuScene(resourceManager, sceneManager, audioManager)
		case game.SceneGuide:
			return scenes.NewGuideScene(resourceManager, sceneManager)
		case game.SceneGame:
			return scenes.NewGameScene(resourceManager, sceneManager, audioManager, configs)
		case game.SceneGameOver:
			return scenes.NewGameOverScene(resourceManager, sceneManager, audioManager)
		default:
			return nil
		}
	})

	sceneManager.Switch(game.SceneMenu)

	// 命令行指定全屏，或上次退出时保存过全屏设置
	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfigs 加载全部战斗配置
func loadGameConfigs() (scenes.GameConfigs, error) {
	gameplay, err := config.LoadGameplayConfig("data/gameplay.yaml")
	if err != nil {
		return scenes.GameConfigs{}, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	skills, err := config.LoadSkillsConfig("data/skills.yaml")
	if err != nil {
		return scenes.GameConfigs{}, fmt.Errorf("技能配置加载失败: %w", err)
	}
	spawnRules, err := config.LoadSpawnRules("data/spawn_rules.yaml")
	if err != nil {
		return scenes.GameConfigs{}, fmt.Errorf("刷怪配置加载失败: %w", err)
	}
	world, err := config.LoadWorldConfig("data/levels/world.yaml")
	if err != nil {
		return scenes.GameConfigs{}, fmt.Errorf("世界配置加载失败: %w", err)
	}

	return scenes.GameConfigs{
		Gameplay:   gameplay,
		Skills:     skills,
		SpawnRules: spawnRules,
		World:      world,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 主菜单的 Exit 通过场景管理器请求退出
	if a.sceneManager.QuitRequested() {
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
