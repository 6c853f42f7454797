package entities

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/utils"
)

// stubLoader 实现 ResourceLoader，所有贴图在内存中生成，避免文件 I/O
// 帧目录固定返回两帧，便于测试区分动画推进
type stubLoader struct{}

func (stubLoader) LoadSprite(path string, fallbackW, fallbackH int, fallback color.Color) (*ebiten.Image, *utils.Mask) {
	img := ebiten.NewImage(fallbackW, fallbackH)
	img.Fill(fallback)
	return img, utils.NewFilledMask(fallbackW, fallbackH)
}

func (stubLoader) LoadFrameDir(dir string, fallbackW, fallbackH int, fallback color.Color) ([]*ebiten.Image, []*utils.Mask) {
	frames := make([]*ebiten.Image, 2)
	masks := make([]*utils.Mask, 2)
	for i := range frames {
		frames[i] = ebiten.NewImage(fallbackW, fallbackH)
		frames[i].Fill(fallback)
		masks[i] = utils.NewFilledMask(fallbackW, fallbackH)
	}
	return frames, masks
}

func (stubLoader) SilhouetteImage(mask *utils.Mask) *ebiten.Image {
	return ebiten.NewImageFromImage(mask.Silhouette())
}

// Ensure stubLoader implements ResourceLoader
var _ ResourceLoader = stubLoader{}
