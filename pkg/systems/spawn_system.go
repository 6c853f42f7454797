package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/entities"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// SpawnSystem 按周期在地图生成点刷出敌人
//
// 敌人上限按当前实体数统计，死亡定格中的敌人在被清除前同样占坑。
// 候选点落在障碍物内（含边界）或离玩家太近时重抽，
// 尝试次数用尽则放弃本周期，绝不阻塞帧循环。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
	resources     entities.ResourceLoader
	rules         *config.SpawnRulesConfig
	world         *config.WorldConfig
	rng           *rand.Rand

	lastSpawn float64
}

// NewSpawnSystem 创建敌人生成系统
// rng 由调用方注入，测试用固定种子复现生成序列
func NewSpawnSystem(em *ecs.EntityManager, clock *game.Clock, resources entities.ResourceLoader,
	rules *config.SpawnRulesConfig, world *config.WorldConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		clock:         clock,
		resources:     resources,
		rules:         rules,
		world:         world,
		rng:           rng,
		lastSpawn:     clock.Now(),
	}
}

// Update 周期到点时尝试生成一个敌人
func (s *SpawnSystem) Update() {
	now := s.clock.Now()
	if now-s.lastSpawn < s.rules.Period {
		return
	}
	s.lastSpawn = now
	s.trySpawn()
}

// trySpawn 有界重试地抽取一个合法生成点并刷出随机种类的敌人
func (s *SpawnSystem) trySpawn() {
	if len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)) >= s.rules.MaxEnemies {
		return
	}
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])

	obstacles := collectObstacleRects(s.entityManager)
	kinds := s.rules.Kinds()
	if len(s.world.SpawnPoints) == 0 || len(kinds) == 0 {
		return
	}

	for attempt := 0; attempt < s.rules.MaxAttempts; attempt++ {
		candidate := s.world.SpawnPoints[s.rng.Intn(len(s.world.SpawnPoints))]
		if s.blocked(candidate, playerPos, obstacles) {
			continue
		}

		kind := kinds[s.rng.Intn(len(kinds))]
		stats, ok := s.rules.GetEnemyStats(kind)
		if !ok {
			continue
		}
		entities.NewEnemyEntity(s.entityManager, s.resources, kind, stats, candidate.X, candidate.Y)
		return
	}
}

// blocked 判断候选生成点是否不可用
func (s *SpawnSystem) blocked(p config.Point, playerPos *components.PositionComponent, obstacles []utils.Rect) bool {
	for _, rect := range obstacles {
		if rect.Contains(p.X, p.Y) {
			return true
		}
	}
	return math.Hypot(p.X-playerPos.X, p.Y-playerPos.Y) < s.rules.MinPlayerDistance
}
