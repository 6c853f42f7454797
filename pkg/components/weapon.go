package components

import "github.com/hajimehoshi/ebiten/v2"

// WeaponMode 武器模式
type WeaponMode int

const (
	WeaponGun   WeaponMode = iota // 远程：子弹
	WeaponSword                   // 近战：挥砍
)

// WeaponComponent 玩家携带的武器
//
// 位置每帧从玩家中心 + 瞄准方向 × Distance 推导，不独立移动。
// 瞄准方向来自屏幕中心指向鼠标的向量（镜头始终锁定玩家，
// 屏幕中心即玩家）；鼠标恰好在中心时保持上一帧方向。
type WeaponComponent struct {
	Mode     WeaponMode
	Distance float64 // 环绕玩家的距离

	DirX, DirY float64 // 当前瞄准方向（单位向量），初始朝下 (0, 1)
	Rotation   float64 // 渲染角度（度），atan2(dirX, dirY)-90

	GunImage   *ebiten.Image
	SwordImage *ebiten.Image
	Switches   int // 累计切换次数，决定切换音效/图标的交替
}
