package components

import "github.com/gonewx/survivors/pkg/utils"

// ProjectileKind 弹道种类
type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota // 枪械子弹
	ProjectileSlash                        // 挥砍
)

// ProjectileComponent 飞行中的弹道
// 无视障碍物直线飞行；存活时长由 LifetimeComponent 管理
type ProjectileComponent struct {
	Kind       ProjectileKind
	DirX, DirY float64     // 飞行方向（单位向量）
	Speed      float64     // 飞行速度（像素/秒）
	Mask       *utils.Mask // 弹道贴图的像素掩码
}
