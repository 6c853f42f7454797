package scenes

import (
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/game"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 逻辑屏幕尺寸，所有场景都按这套坐标布局
const (
	WindowWidth  = config.GameWindowWidth
	WindowHeight = config.GameWindowHeight
)

// 场景共用的 UI 字体，文件缺失时由 ResourceManager 降级为内置点阵字体
const uiFontPath = "assets/fonts/ui.ttf"
