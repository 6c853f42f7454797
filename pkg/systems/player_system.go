package systems

import (
	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// blinkAlpha 无敌闪烁不可见相位的透明度
const blinkAlpha = 128.0 / 255.0

// PlayerSystem 处理玩家的移动、碰撞、动画和无敌状态
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, clock *game.Clock) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 按当前输入快照推进玩家状态
func (s *PlayerSystem) Update(deltaTime float64, input utils.InputSnapshot) {
	entities := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(entities) == 0 {
		return
	}

	obstacles := collectObstacleRects(s.entityManager)

	for _, id := range entities {
		player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		hitbox, hasHitbox := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)

		// 八方向输入归一化成单位向量,无输入时为零向量
		player.DirX, player.DirY = utils.Normalize(input.MoveX, input.MoveY)

		if sprite != nil && hasHitbox {
			box := entityHitbox(pos, sprite, hitbox)
			box = ResolveMovement(box,
				player.DirX*player.Speed*deltaTime,
				player.DirY*player.Speed*deltaTime,
				obstacles)
			pos.X, pos.Y = box.Center()
		}

		s.animate(player, sprite, deltaTime)
		s.updateInvulnerability(player, sprite)
	}
}

// animate 更新朝向和行走动画
func (s *PlayerSystem) animate(player *components.PlayerComponent, sprite *components.SpriteComponent, deltaTime float64) {
	// X 轴先写、Y 轴后写:斜向移动最终显示纵向朝向
	if player.DirX != 0 {
		if player.DirX > 0 {
			player.Facing = components.FacingRight
		} else {
			player.Facing = components.FacingLeft
		}
	}
	if player.DirY != 0 {
		if player.DirY > 0 {
			player.Facing = components.FacingDown
		} else {
			player.Facing = components.FacingUp
		}
	}

	if player.DirX != 0 || player.DirY != 0 {
		player.FrameIndex += player.WalkFrameRate * deltaTime
	} else {
		// 静止时回到第一帧
		player.FrameIndex = 0
	}

	if sprite != nil {
		if frame := player.CurrentFrame(); frame != nil {
			sprite.Image = frame
		}
	}
}

// updateInvulnerability 处理无敌窗口到期和闪烁切换
func (s *PlayerSystem) updateInvulnerability(player *components.PlayerComponent, sprite *components.SpriteComponent) {
	now := s.clock.Now()

	if player.Invulnerable {
		if now >= player.InvulnerableUntil {
			player.Invulnerable = false
			player.BlinkVisible = true
		} else if s.clock.Since(player.LastBlinkTime) >= player.BlinkInterval {
			player.LastBlinkTime = now
			player.BlinkVisible = !player.BlinkVisible
		}
	} else {
		player.BlinkVisible = true
	}

	if sprite != nil {
		if player.BlinkVisible {
			sprite.Alpha = 1
		} else {
			sprite.Alpha = blinkAlpha
		}
	}
}

// DamagePlayer 对玩家施加一次接触伤害,返回玩家是否因此死亡
//
// 无敌期间伤害完全无效(不是减免)。生命值恰为 20 时的那一击
// 不播放受伤音效。扣到 0 不再授予无敌窗口,全局状态的切换
// 由调用方根据返回值处理。
func DamagePlayer(player *components.PlayerComponent, amount int, clock *game.Clock, sounds game.SoundSink) bool {
	if player.Invulnerable {
		return false
	}

	if player.Health != 20 && sounds != nil {
		sounds.PlaySound(game.SoundHurt)
	}

	player.Health -= amount
	if player.Health <= 0 {
		player.Health = 0
		return true
	}

	now := clock.Now()
	player.Invulnerable = true
	player.InvulnerableUntil = now + player.InvulnerableDuration
	player.LastBlinkTime = now
	player.BlinkVisible = true
	return false
}
