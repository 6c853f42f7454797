package systems

import (
	"math"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/utils"
)

// WeaponSystem 处理武器的瞄准、位置和朝向
//
// 瞄准向量取屏幕坐标:镜头始终锁定玩家,屏幕中心即玩家,
// 所以"屏幕中心指向鼠标"等价于"玩家指向准星"。
// 武器位置每帧从玩家世界坐标 + 瞄准方向 × 距离重新推导。
type WeaponSystem struct {
	entityManager *ecs.EntityManager
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(em *ecs.EntityManager) *WeaponSystem {
	return &WeaponSystem{
		entityManager: em,
	}
}

// Update 按当前输入快照更新武器状态
func (s *WeaponSystem) Update(input utils.InputSnapshot) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])
	if !ok {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.WeaponComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		weapon, ok := ecs.GetComponent[*components.WeaponComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 鼠标恰好在屏幕中心时方向未定义,保持上一帧朝向
		dirX, dirY := utils.Normalize(
			float64(input.MouseX)-float64(config.GameWindowWidth)/2,
			float64(input.MouseY)-float64(config.GameWindowHeight)/2)
		if dirX != 0 || dirY != 0 {
			weapon.DirX, weapon.DirY = dirX, dirY
		}

		// atan2 参数顺序刻意取 (x, y):素材默认朝上,这样零旋转对应朝上
		weapon.Rotation = math.Atan2(weapon.DirX, weapon.DirY)*180/math.Pi - 90

		pos.X = playerPos.X + weapon.DirX*weapon.Distance
		pos.Y = playerPos.Y + weapon.DirY*weapon.Distance

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			s.applyVisual(weapon, sprite)
		}
	}
}

// applyVisual 根据模式和瞄准方向设置武器贴图的旋转与翻转
// 瞄准左半边时旋转取绝对值再垂直翻转,避免贴图倒置
func (s *WeaponSystem) applyVisual(weapon *components.WeaponComponent, sprite *components.SpriteComponent) {
	switch weapon.Mode {
	case components.WeaponGun:
		if weapon.GunImage != nil {
			sprite.Image = weapon.GunImage
		}
	case components.WeaponSword:
		if weapon.SwordImage != nil {
			sprite.Image = weapon.SwordImage
		}
	}

	if weapon.DirX > 0 {
		sprite.Rotation = weapon.Rotation
		sprite.FlipY = false
	} else {
		sprite.Rotation = math.Abs(weapon.Rotation)
		sprite.FlipY = true
	}
}

// SwitchWeaponMode 在枪和剑之间切换武器模式,返回切换后的模式
// 切换只换贴图和后续攻击的弹道类型,本身没有冷却
func SwitchWeaponMode(weapon *components.WeaponComponent) components.WeaponMode {
	if weapon.Mode == components.WeaponGun {
		weapon.Mode = components.WeaponSword
	} else {
		weapon.Mode = components.WeaponGun
	}
	weapon.Switches++
	return weapon.Mode
}
