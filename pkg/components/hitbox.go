package components

// HitboxComponent 定义实体的碰撞矩形
//
// 碰撞矩形 = 以实体位置为中心、按 Inset 收缩后的贴图矩形。
// Inset 为负值时碰撞盒比贴图小，让贴图边缘的留白不挡路：
// 宽 = Sprite.Width + InsetX，高 = Sprite.Height + InsetY。
type HitboxComponent struct {
	InsetX float64
	InsetY float64
}
