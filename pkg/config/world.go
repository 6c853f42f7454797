package config

import (
	"fmt"

	"github.com/gonewx/survivors/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Point 世界坐标点
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ObstacleDef 静态障碍物定义
// Sprite 为空时表示纯碰撞矩形（无可见贴图，如地图边界）
type ObstacleDef struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Sprite string  `yaml:"sprite"`
}

// WorldConfig 世界/关卡配置
//
// 坐标均为世界像素坐标，原点在左上角，Y 轴向下。
// 障碍物矩形以左上角定位（与 Tiled 对象层的习惯一致）。
type WorldConfig struct {
	WidthTiles  int           `yaml:"widthTiles"`  // 世界宽度（瓦片数）
	HeightTiles int           `yaml:"heightTiles"` // 世界高度（瓦片数）
	GroundTile  string        `yaml:"groundTile"`  // 地面瓦片贴图名
	PlayerStart Point         `yaml:"playerStart"` // 玩家出生点（中心坐标）
	SpawnPoints []Point       `yaml:"spawnPoints"` // 敌人生成点列表
	Obstacles   []ObstacleDef `yaml:"obstacles"`   // 静态障碍物列表
}

// LoadWorldConfig 从 YAML 文件加载世界配置
func LoadWorldConfig(filepath string) (*WorldConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config %s: %w", filepath, err)
	}

	var config WorldConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse world YAML from %s: %w", filepath, err)
	}

	if err := validateWorldConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid world config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateWorldConfig 验证世界配置的合法性
func validateWorldConfig(config *WorldConfig) error {
	if config.WidthTiles <= 0 || config.HeightTiles <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d tiles",
			config.WidthTiles, config.HeightTiles)
	}

	w, h := config.PixelSize()
	if config.PlayerStart.X < 0 || config.PlayerStart.X > w ||
		config.PlayerStart.Y < 0 || config.PlayerStart.Y > h {
		return fmt.Errorf("playerStart (%f, %f) is outside the world",
			config.PlayerStart.X, config.PlayerStart.Y)
	}

	if len(config.SpawnPoints) == 0 {
		return fmt.Errorf("at least one spawn point is required")
	}
	for i, p := range config.SpawnPoints {
		if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
			return fmt.Errorf("spawn point %d (%f, %f) is outside the world", i, p.X, p.Y)
		}
	}

	for i, o := range config.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("obstacle %d: size must be positive, got %fx%f", i, o.Width, o.Height)
		}
	}

	return nil
}

// PixelSize 返回世界的像素尺寸
func (c *WorldConfig) PixelSize() (width, height float64) {
	return float64(c.WidthTiles * TileSize), float64(c.HeightTiles * TileSize)
}
