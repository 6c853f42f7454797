package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
)

// EnemySpriteSize 敌人贴图边长（像素）
const EnemySpriteSize = 64

// NewEnemyEntity 创建敌人实体
// 动画帧按种类从 assets/images/enemies/<kind>/ 加载，
// 死亡剪影在创建时从首帧掩码预生成，同种敌人共享同一张剪影
func NewEnemyEntity(em *ecs.EntityManager, rm ResourceLoader, kind string, stats *config.EnemyStats, x, y float64) ecs.EntityID {
	frames, masks := rm.LoadFrameDir(
		fmt.Sprintf("assets/images/enemies/%s", kind),
		EnemySpriteSize, EnemySpriteSize, color.White,
	)

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.EnemyComponent{
		Kind:        kind,
		Speed:       stats.Speed,
		Frames:      frames,
		Masks:       masks,
		FrameRate:   stats.FrameRate,
		HitDuration: stats.HitDuration,
		DeathDelay:  stats.DeathDelay,
		Silhouette:  rm.SilhouetteImage(masks[0]),
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image:  frames[0],
		Width:  EnemySpriteSize,
		Height: EnemySpriteSize,
		Layer:  components.LayerObject,
	})
	em.AddComponent(id, &components.HitboxComponent{
		InsetX: stats.HitboxInsetX,
		InsetY: stats.HitboxInsetY,
	})

	return id
}
