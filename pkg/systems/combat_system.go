package systems

import (
	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// CombatSystem 结算弹道×敌人与玩家×敌人的碰撞
//
// 两类检测都用像素掩码而不是矩形，贴图的透明边缘不参与判定。
// 在移动和生命周期系统之后、延迟清除之前运行，
// 本帧内被前一颗弹道击杀的敌人（Dying）不再参与后续判定。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
	sounds        game.SoundSink
	config        *config.GameplayConfig
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(em *ecs.EntityManager, clock *game.Clock, sounds game.SoundSink,
	cfg *config.GameplayConfig) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		clock:         clock,
		sounds:        sounds,
		config:        cfg,
	}
}

// Update 结算本帧的全部战斗碰撞
func (s *CombatSystem) Update() {
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	s.resolveProjectileHits(enemies)
	s.resolvePlayerContact(enemies)
}

// resolveProjectileHits 弹道对敌人的命中
// 一颗弹道结算本帧与它重叠的所有敌人，之后标记销毁；
// 只有首次进入死亡状态的击杀计分
func (s *CombatSystem) resolveProjectileHits(enemies []ecs.EntityID) {
	projectiles := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	now := s.clock.Now()
	state := game.GetGameState()

	for _, pid := range projectiles {
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, pid)
		if !ok {
			continue
		}
		// 超时弹道本帧已被标记移除，不再参与命中
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, pid); ok && lifetime.IsExpired {
			continue
		}
		projPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, pid)
		if !ok {
			continue
		}

		hitAny := false
		for _, eid := range enemies {
			enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, eid)
			if !ok || enemy.Dying {
				continue
			}
			enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, eid)
			if !ok {
				continue
			}
			if !masksOverlap(proj.Mask, projPos.X, projPos.Y, enemy.CurrentMask(), enemyPos.X, enemyPos.Y) {
				continue
			}

			// 受击窗口内的敌人不重复结算击杀
			wasHit := enemy.Hit
			HitEnemy(enemy, now)
			if !wasHit {
				sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, eid)
				if DestroyEnemy(enemy, sprite, now) {
					state.AddScore(s.config.ScorePerKill)
				}
			}
			hitAny = true
		}

		if hitAny {
			s.playHitSound(proj.Kind)
			s.entityManager.DestroyEntity(pid)
		}
	}
}

// resolvePlayerContact 敌人对玩家的接触伤害
// 受击窗口内的敌人跳过；接触到玩家的敌人同归于尽且不计分。
// 玩家无敌期间伤害被完全挡掉，但敌人仍会撞碎。
func (s *CombatSystem) resolvePlayerContact(enemies []ecs.EntityID) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, players[0])
	if !ok {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])

	now := s.clock.Now()
	died := false

	for _, eid := range enemies {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, eid)
		if !ok || enemy.Dying || enemy.Hit {
			continue
		}
		enemyPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, eid)
		if !ok {
			continue
		}
		if !masksOverlap(player.CurrentMask(), playerPos.X, playerPos.Y, enemy.CurrentMask(), enemyPos.X, enemyPos.Y) {
			continue
		}

		if DamagePlayer(player, s.config.ContactDamage, s.clock, s.sounds) {
			died = true
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, eid)
		HitEnemy(enemy, now)
		DestroyEnemy(enemy, sprite, now)
	}

	if died {
		game.GetGameState().SetGameOver()
		s.sounds.PlaySound(game.SoundGameOver)
	}
}

// playHitSound 按弹道种类播放命中音效
func (s *CombatSystem) playHitSound(kind components.ProjectileKind) {
	if kind == components.ProjectileSlash {
		s.sounds.PlaySound(game.SoundBlood)
	} else {
		s.sounds.PlaySound(game.SoundImpact)
	}
}

// masksOverlap 判断两个以 (x, y) 为中心锚点的掩码是否有不透明像素重合
// 任一掩码缺失时视为不重叠
func masksOverlap(a *utils.Mask, ax, ay float64, b *utils.Mask, bx, by float64) bool {
	if a == nil || b == nil {
		return false
	}
	aLeft, aTop := int(ax-float64(a.W)/2), int(ay-float64(a.H)/2)
	bLeft, bTop := int(bx-float64(b.W)/2), int(by-float64(b.H)/2)
	return a.Overlaps(b, bLeft-aLeft, bTop-aTop)
}
