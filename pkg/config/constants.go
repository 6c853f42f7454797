package config

// 游戏窗口逻辑尺寸
// Layout 返回该尺寸，Ebitengine 负责缩放到实际窗口
const (
	GameWindowWidth  = 1280
	GameWindowHeight = 720
)

// TileSize 地图瓦片边长（像素）
const TileSize = 64
