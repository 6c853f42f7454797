package systems

import (
	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// EnemySystem 处理敌人的追击移动、受击窗口和死亡移除
//
// 受击（Hit）和死亡（Dying）是两条独立的状态线:
// 受击中的敌人继续移动但跳过障碍物解算,死亡中的敌人
// 完全定格,剪影停留 DeathDelay 后移除。
type EnemySystem struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(em *ecs.EntityManager, clock *game.Clock) *EnemySystem {
	return &EnemySystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 推进所有敌人的状态
func (s *EnemySystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])
	if !ok {
		return
	}

	obstacles := collectObstacleRects(s.entityManager)
	now := s.clock.Now()

	entities := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if enemy.Dying {
			// 死亡定格,延迟结束后移除
			if s.clock.Since(enemy.DeathAt) >= enemy.DeathDelay {
				s.entityManager.DestroyEntity(id)
			}
			continue
		}

		if enemy.Hit && now >= enemy.HitUntil {
			enemy.Hit = false
		}

		// 每帧朝玩家中心重新瞄准;与玩家重合时方向未定义,跳过本帧移动
		enemy.DirX, enemy.DirY = utils.Normalize(playerPos.X-pos.X, playerPos.Y-pos.Y)

		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		hitbox, hasHitbox := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)

		dx := enemy.DirX * enemy.Speed * deltaTime
		dy := enemy.DirY * enemy.Speed * deltaTime

		if enemy.Hit {
			// 受击窗口内跳过障碍物解算,继续直线追击
			pos.X += dx
			pos.Y += dy
		} else if sprite != nil && hasHitbox {
			box := entityHitbox(pos, sprite, hitbox)
			box = ResolveMovement(box, dx, dy, obstacles)
			pos.X, pos.Y = box.Center()
		}

		enemy.FrameIndex += enemy.FrameRate * deltaTime
		if sprite != nil {
			if frame := enemy.CurrentFrame(); frame != nil {
				sprite.Image = frame
			}
		}
	}
}

// HitEnemy 使敌人进入受击窗口:短暂无敌并染色
// 窗口未结束时重复调用是空操作,返回本次调用是否生效
func HitEnemy(enemy *components.EnemyComponent, now float64) bool {
	if enemy.Hit {
		return false
	}
	enemy.Hit = true
	enemy.HitUntil = now + enemy.HitDuration
	return true
}

// DestroyEnemy 使敌人进入死亡定格:贴图换成剪影,停止移动和动画
// 首次调用生效,重复调用不重置死亡计时,返回本次调用是否生效
func DestroyEnemy(enemy *components.EnemyComponent, sprite *components.SpriteComponent, now float64) bool {
	if enemy.Dying {
		return false
	}
	enemy.Dying = true
	enemy.DeathAt = now
	if sprite != nil && enemy.Silhouette != nil {
		sprite.Image = enemy.Silhouette
	}
	return true
}
