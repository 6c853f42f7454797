package entities

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// ResourceLoader 实体工厂需要的资源加载能力
// 生产代码传入 *game.ResourceManager，测试传入内存桩避免文件 I/O
type ResourceLoader interface {
	LoadSprite(path string, fallbackW, fallbackH int, fallback color.Color) (*ebiten.Image, *utils.Mask)
	LoadFrameDir(dir string, fallbackW, fallbackH int, fallback color.Color) ([]*ebiten.Image, []*utils.Mask)
	SilhouetteImage(mask *utils.Mask) *ebiten.Image
}

// 编译期检查：ResourceManager 必须满足工厂的资源接口
var _ ResourceLoader = (*game.ResourceManager)(nil)
