package entities

import (
	"image/color"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
)

// WeaponSpriteSize 武器贴图的名义边长（像素），仅用于素材缺失时的占位图
const WeaponSpriteSize = 64

// NewWeaponEntity 创建环绕玩家的武器实体
// 初始瞄准方向向下，位置 = 玩家中心 + 方向 × distance；
// 两种模式的贴图都在创建时加载，切换时只换 Sprite.Image
func NewWeaponEntity(em *ecs.EntityManager, rm ResourceLoader, playerX, playerY, distance float64) ecs.EntityID {
	gunImage, _ := rm.LoadSprite("assets/images/weapon/gun.png",
		WeaponSpriteSize, WeaponSpriteSize, color.White)
	swordImage, _ := rm.LoadSprite("assets/images/weapon/sword.png",
		WeaponSpriteSize, WeaponSpriteSize, color.White)

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: playerX,
		Y: playerY + distance,
	})
	em.AddComponent(id, &components.WeaponComponent{
		Mode:       components.WeaponGun,
		Distance:   distance,
		DirX:       0,
		DirY:       1,
		GunImage:   gunImage,
		SwordImage: swordImage,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image:  gunImage,
		Width:  WeaponSpriteSize,
		Height: WeaponSpriteSize,
		Layer:  components.LayerObject,
	})

	return id
}
