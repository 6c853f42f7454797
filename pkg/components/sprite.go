package components

import "github.com/hajimehoshi/ebiten/v2"

// RenderLayer 渲染层级
// 地面层先绘制，物体层之后绘制，两层内部都按世界 Y 坐标排序（画家算法）
type RenderLayer int

const (
	LayerGround RenderLayer = iota // 地面装饰，永远垫底
	LayerObject                    // 参与遮挡关系的实体
)

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// Width/Height 是逻辑尺寸；素材缺失时 Image 为占位图，尺寸仍然有效
type SpriteComponent struct {
	Image    *ebiten.Image
	Width    float64
	Height   float64
	Rotation float64     // 绕中心的旋转角度（度），正值在屏幕上表现为逆时针
	FlipY    bool        // 旋转后再做垂直翻转（武器瞄准左半边时使用）
	Alpha    float64     // 0~1 透明度，0 按 1 处理
	Layer    RenderLayer // 渲染层级
}
