package systems

import (
	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/utils"
)

// ResolveMovement 轴分离的移动碰撞解算
//
// 先施加 X 位移并把命中的障碍物推回边缘，再对 Y 做同样处理。
// 两轴分开解算可以避免斜向移动从障碍物拐角处穿过。
// 推回方向由该轴位移的符号决定；位移为零的轴不做任何修正，
// 因此零位移调用是纯粹的无操作。
func ResolveMovement(hitbox utils.Rect, dx, dy float64, obstacles []utils.Rect) utils.Rect {
	if dx != 0 {
		hitbox.X += dx
		for _, ob := range obstacles {
			if !hitbox.Overlaps(ob) {
				continue
			}
			if dx > 0 {
				hitbox.X = ob.X - hitbox.W
			} else {
				hitbox.X = ob.Right()
			}
		}
	}

	if dy != 0 {
		hitbox.Y += dy
		for _, ob := range obstacles {
			if !hitbox.Overlaps(ob) {
				continue
			}
			if dy > 0 {
				hitbox.Y = ob.Y - hitbox.H
			} else {
				hitbox.Y = ob.Bottom()
			}
		}
	}

	return hitbox
}

// entityHitbox 返回实体的碰撞矩形：以位置为中心、按 Inset 收缩的贴图矩形
func entityHitbox(pos *components.PositionComponent, sprite *components.SpriteComponent, hb *components.HitboxComponent) utils.Rect {
	return utils.NewRectCenter(pos.X, pos.Y, sprite.Width+hb.InsetX, sprite.Height+hb.InsetY)
}

// collectObstacleRects 收集所有静态障碍物的碰撞矩形
// 玩家、敌人和生成器共用同一份障碍物集合
func collectObstacleRects(em *ecs.EntityManager) []utils.Rect {
	entities := ecs.GetEntitiesWith3[*components.ObstacleComponent, *components.PositionComponent, *components.SpriteComponent](em)

	rects := make([]utils.Rect, 0, len(entities))
	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
		if !ok {
			continue
		}
		rects = append(rects, utils.NewRectCenter(pos.X, pos.Y, sprite.Width, sprite.Height))
	}
	return rects
}
