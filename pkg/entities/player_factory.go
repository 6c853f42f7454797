package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
)

// PlayerSpriteSize 玩家贴图边长（像素）
const PlayerSpriteSize = 128

// playerFacingDirs 朝向对应的帧目录名，下标与 components.Facing 常量对齐
var playerFacingDirs = [4]string{"down", "left", "right", "up"}

// NewPlayerEntity 创建玩家实体
// 初始朝向向右，首帧显示向下站立帧（动画未启动时的静立姿态）
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器（加载四个朝向的行走帧）
//   - stats: 玩家数值配置
//   - x, y: 出生点（世界坐标，实体中心）
//
// 返回: 创建的玩家实体ID
func NewPlayerEntity(em *ecs.EntityManager, rm ResourceLoader, stats config.PlayerStats, x, y float64) ecs.EntityID {
	player := &components.PlayerComponent{
		Speed:                stats.Speed,
		Health:               stats.MaxHealth,
		MaxHealth:            stats.MaxHealth,
		Facing:               components.FacingRight,
		WalkFrameRate:        stats.WalkFrameRate,
		InvulnerableDuration: stats.InvulnerableSeconds,
		BlinkVisible:         true,
		BlinkInterval:        stats.BlinkInterval,
	}
	for facing, dir := range playerFacingDirs {
		frames, masks := rm.LoadFrameDir(
			fmt.Sprintf("assets/images/player/%s", dir),
			PlayerSpriteSize, PlayerSpriteSize, color.White,
		)
		player.Frames[facing] = frames
		player.Masks[facing] = masks
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, player)
	em.AddComponent(id, &components.SpriteComponent{
		Image:  player.Frames[components.FacingDown][0],
		Width:  PlayerSpriteSize,
		Height: PlayerSpriteSize,
		Layer:  components.LayerObject,
	})
	em.AddComponent(id, &components.HitboxComponent{
		InsetX: stats.HitboxInsetX,
		InsetY: stats.HitboxInsetY,
	})

	return id
}
