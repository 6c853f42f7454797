package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/game"
)

func testSpawnRules() *config.SpawnRulesConfig {
	return &config.SpawnRulesConfig{
		Period:            0.3,
		MaxEnemies:        20,
		MinPlayerDistance: 400,
		MaxAttempts:       20,
		Enemies: map[string]config.EnemyStats{
			"bat": {Speed: 200, FrameRate: 6, HitboxInsetX: -20, HitboxInsetY: -40, HitDuration: 0.2, DeathDelay: 0.2},
		},
	}
}

func testSpawnWorldConfig(points ...config.Point) *config.WorldConfig {
	return &config.WorldConfig{
		WidthTiles:  40,
		HeightTiles: 40,
		SpawnPoints: points,
	}
}

func newSpawnTestWorld(rules *config.SpawnRulesConfig, world *config.WorldConfig) (*ecs.EntityManager, *game.Clock, *SpawnSystem) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	rng := rand.New(rand.NewSource(1))
	system := NewSpawnSystem(em, clock, stubLoader{}, rules, world, rng)
	return em, clock, system
}

func countEnemies(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](em))
}

func TestSpawnWaitsForPeriod(t *testing.T) {
	em, clock, system := newSpawnTestWorld(testSpawnRules(), testSpawnWorldConfig(config.Point{X: 2000, Y: 2000}))
	createTestPlayer(em, 1000, 1000)

	system.Update()
	if countEnemies(em) != 0 {
		t.Fatal("Nothing may spawn before the first period elapses")
	}

	clock.Advance(0.3)
	system.Update()
	if countEnemies(em) != 1 {
		t.Fatalf("Expected one enemy after the period, got %d", countEnemies(em))
	}

	// 周期内重复调用不再生成
	clock.Advance(0.1)
	system.Update()
	if countEnemies(em) != 1 {
		t.Errorf("Expected still one enemy mid-period, got %d", countEnemies(em))
	}

	clock.Advance(0.2)
	system.Update()
	if countEnemies(em) != 2 {
		t.Errorf("Expected a second enemy after the next period, got %d", countEnemies(em))
	}
}

func TestSpawnedEnemyUsesConfiguredStats(t *testing.T) {
	em, clock, system := newSpawnTestWorld(testSpawnRules(), testSpawnWorldConfig(config.Point{X: 2000, Y: 1800}))
	createTestPlayer(em, 1000, 1000)

	clock.Advance(0.3)
	system.Update()

	ids := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em)
	if len(ids) != 1 {
		t.Fatalf("Expected one spawned enemy, got %d", len(ids))
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, ids[0])
	if enemy.Kind != "bat" {
		t.Errorf("Expected kind bat, got %s", enemy.Kind)
	}
	if enemy.Speed != 200 || enemy.FrameRate != 6 {
		t.Errorf("Expected configured stats, got speed %f rate %f", enemy.Speed, enemy.FrameRate)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
	if pos.X != 2000 || pos.Y != 1800 {
		t.Errorf("Expected spawn at the configured point, got (%f, %f)", pos.X, pos.Y)
	}
}

func TestSpawnRespectsEnemyCap(t *testing.T) {
	rules := testSpawnRules()
	rules.MaxEnemies = 2
	em, clock, system := newSpawnTestWorld(rules, testSpawnWorldConfig(config.Point{X: 2000, Y: 2000}))
	createTestPlayer(em, 1000, 1000)

	for i := 0; i < 5; i++ {
		clock.Advance(0.3)
		system.Update()
	}
	if countEnemies(em) != 2 {
		t.Errorf("Expected cap at 2 enemies, got %d", countEnemies(em))
	}
}

func TestDyingEnemiesCountTowardCap(t *testing.T) {
	rules := testSpawnRules()
	rules.MaxEnemies = 1
	em, clock, system := newSpawnTestWorld(rules, testSpawnWorldConfig(config.Point{X: 2000, Y: 2000}))
	createTestPlayer(em, 1000, 1000)

	dyingID := createTestEnemy(em, 1500, 1500)
	dying, _ := ecs.GetComponent[*components.EnemyComponent](em, dyingID)
	dying.Dying = true

	clock.Advance(0.3)
	system.Update()
	if countEnemies(em) != 1 {
		t.Errorf("A dying enemy still occupies a cap slot, got %d enemies", countEnemies(em))
	}
}

func TestSpawnRejectsPointsNearPlayer(t *testing.T) {
	// 唯一的生成点离玩家 300 像素,低于 400 的下限
	em, clock, system := newSpawnTestWorld(testSpawnRules(), testSpawnWorldConfig(config.Point{X: 1300, Y: 1000}))
	createTestPlayer(em, 1000, 1000)

	clock.Advance(0.3)
	system.Update()
	if countEnemies(em) != 0 {
		t.Error("Points within the minimum player distance must be rejected")
	}

	// 玩家走远后同一个点变得可用
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, players[0])
	pos.X = 100

	clock.Advance(0.3)
	system.Update()
	if countEnemies(em) != 1 {
		t.Errorf("Expected spawn once the player moved away, got %d", countEnemies(em))
	}
}

func TestSpawnRejectsPointsInsideObstacles(t *testing.T) {
	// 生成点正好落在障碍物右边界上,包含边界也算阻挡
	em, clock, system := newSpawnTestWorld(testSpawnRules(), testSpawnWorldConfig(config.Point{X: 2050, Y: 2000}))
	createTestPlayer(em, 1000, 1000)
	createTestObstacle(em, 2000, 2000, 100, 100)

	clock.Advance(0.3)
	system.Update()
	if countEnemies(em) != 0 {
		t.Error("Points inside an obstacle (boundary inclusive) must be rejected")
	}
}

func TestSpawnGivesUpAfterBoundedAttempts(t *testing.T) {
	rules := testSpawnRules()
	rules.MaxAttempts = 3
	// 两个生成点都不可用:一个在障碍物里,一个贴着玩家
	world := testSpawnWorldConfig(
		config.Point{X: 2000, Y: 2000},
		config.Point{X: 1010, Y: 1000},
	)
	em, clock, system := newSpawnTestWorld(rules, world)
	createTestPlayer(em, 1000, 1000)
	createTestObstacle(em, 2000, 2000, 100, 100)

	clock.Advance(0.3)
	system.Update()
	if countEnemies(em) != 0 {
		t.Error("Exhausted attempts must skip the tick instead of spawning")
	}

	// 下一个周期照常恢复尝试
	obstacles := ecs.GetEntitiesWith1[*components.ObstacleComponent](em)
	em.DestroyEntity(obstacles[0])
	em.RemoveMarkedEntities()

	clock.Advance(0.3)
	for i := 0; i < 20 && countEnemies(em) == 0; i++ {
		system.Update()
		clock.Advance(0.3)
	}
	if countEnemies(em) == 0 {
		t.Error("Spawning must recover on later ticks once a point frees up")
	}
}
