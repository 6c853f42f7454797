package entities

import (
	"image/color"
	"math"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
)

// 弹道贴图的名义边长（像素），仅用于素材缺失时的占位图
const (
	BulletSpriteSize = 16
	SlashSpriteSize  = 64
)

// NewBulletEntity 创建枪械子弹实体
// 子弹沿固定方向直线飞行，存活时长到期后移除。
// stats.SpawnOffset 由调用方在计算出生点时使用，工厂不关心。
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - stats: 子弹数值配置
//   - x, y: 出生点（世界坐标）
//   - dirX, dirY: 飞行方向（单位向量）
//
// 返回: 创建的子弹实体ID
func NewBulletEntity(em *ecs.EntityManager, rm ResourceLoader, stats config.ProjectileStats, x, y, dirX, dirY float64) ecs.EntityID {
	image, mask := rm.LoadSprite("assets/images/weapon/bullet.png",
		BulletSpriteSize, BulletSpriteSize, color.White)

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ProjectileComponent{
		Kind:  components.ProjectileBullet,
		DirX:  dirX,
		DirY:  dirY,
		Speed: stats.Speed,
		Mask:  mask,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image:  image,
		Width:  BulletSpriteSize,
		Height: BulletSpriteSize,
		Layer:  components.LayerObject,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: stats.Lifetime,
	})

	return id
}

// NewSlashEntity 创建挥砍实体
// 与子弹同属弹道，区别在于贴图旋转到飞行方向
func NewSlashEntity(em *ecs.EntityManager, rm ResourceLoader, stats config.ProjectileStats, x, y, dirX, dirY float64) ecs.EntityID {
	image, mask := rm.LoadSprite("assets/images/weapon/slash.png",
		SlashSpriteSize, SlashSpriteSize, color.White)

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ProjectileComponent{
		Kind:  components.ProjectileSlash,
		DirX:  dirX,
		DirY:  dirY,
		Speed: stats.Speed,
		Mask:  mask,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image:    image,
		Width:    SlashSpriteSize,
		Height:   SlashSpriteSize,
		Rotation: math.Atan2(dirX, dirY)*180/math.Pi - 90,
		Layer:    components.LayerObject,
	})
	em.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: stats.Lifetime,
	})

	return id
}
