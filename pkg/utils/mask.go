package utils

import (
	"image"
	"image/color"
)

// Mask 每像素不透明度位图，用于像素级碰撞检测
//
// 从解码后的 image.Image 构建（不依赖 GPU），bits 按行存储。
// 阈值取 alpha > 50%：半透明边缘不参与碰撞。
type Mask struct {
	W, H int
	bits []bool
}

// NewMaskFromImage 从图像构建不透明度位图
func NewMaskFromImage(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			m.bits[y*w+x] = a > 0x7fff
		}
	}
	return m
}

// NewFilledMask 构建全不透明位图
// 占位贴图（素材缺失时的纯色矩形）退化为矩形碰撞
func NewFilledMask(w, h int) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// At 返回指定像素是否不透明，越界返回 false
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Overlaps 判断两个位图是否有不透明像素重合
// (dx, dy) 是 o 的左上角相对 m 左上角的偏移
func (m *Mask) Overlaps(o *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.W, dx+o.W)
	y1 := min(m.H, dy+o.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.W+x] && o.bits[(y-dy)*o.W+(x-dx)] {
				return true
			}
		}
	}
	return false
}

// Silhouette 生成剪影图像：不透明像素转纯白，其余透明
// 敌人死亡时的定格形态由此而来
func (m *Mask) Silhouette() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.W, m.H))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.bits[y*m.W+x] {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return img
}
