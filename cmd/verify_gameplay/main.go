// verify_gameplay 无头模拟一局战斗，输出刷怪、战斗和得分统计
//
// 从项目根目录运行：
//
//	go run ./cmd/verify_gameplay -seconds 60 -seed 7
//
// 不开窗口、不渲染，按固定步长驱动与 GameScene 完全相同的系统管线，
// 用脚本输入代替真实玩家：持续向右下移动、按住射击，并在固定时间点
// 释放爆发和治疗技能。调配置数值时先跑这个再进游戏。
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/entities"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/systems"
	"github.com/gonewx/survivors/pkg/utils"
)

var (
	seconds = flag.Float64("seconds", 30, "模拟时长（秒）")
	seed    = flag.Int64("seed", 1, "刷怪随机数种子")
)

// soundCounter 统计音效触发次数的 SoundSink
type soundCounter struct {
	counts map[game.SoundID]int
}

func (c *soundCounter) PlaySound(id game.SoundID) bool {
	c.counts[id]++
	return true
}

func main() {
	flag.Parse()

	gameplay, err := config.LoadGameplayConfig("data/gameplay.yaml")
	if err != nil {
		fail("玩法配置加载失败: %v", err)
	}
	skillsCfg, err := config.LoadSkillsConfig("data/skills.yaml")
	if err != nil {
		fail("技能配置加载失败: %v", err)
	}
	spawnRules, err := config.LoadSpawnRules("data/spawn_rules.yaml")
	if err != nil {
		fail("刷怪配置加载失败: %v", err)
	}
	world, err := config.LoadWorldConfig("data/levels/world.yaml")
	if err != nil {
		fail("世界配置加载失败: %v", err)
	}

	game.GetGameState().Reset()

	em := ecs.NewEntityManager()
	clock := game.NewClock()
	sounds := &soundCounter{counts: map[game.SoundID]int{}}
	rm := game.NewResourceManager(nil)
	rng := rand.New(rand.NewSource(*seed))

	entities.BuildWorld(em, rm, world)
	playerID := entities.NewPlayerEntity(em, rm, gameplay.Player, world.PlayerStart.X, world.PlayerStart.Y)
	ecs.AddComponent(em, playerID, systems.NewSkillsComponent(skillsCfg, clock.Now()))
	entities.NewWeaponEntity(em, rm, world.PlayerStart.X, world.PlayerStart.Y, skillsCfg.WeaponDistance)

	skillSystem := systems.NewSkillSystem(em, clock, sounds, rm, skillsCfg)
	playerSystem := systems.NewPlayerSystem(em, clock)
	weaponSystem := systems.NewWeaponSystem(em)
	enemySystem := systems.NewEnemySystem(em, clock)
	projectileSystem := systems.NewProjectileSystem(em)
	lifetimeSystem := systems.NewLifetimeSystem(em)
	combatSystem := systems.NewCombatSystem(em, clock, sounds, gameplay)
	spawnSystem := systems.NewSpawnSystem(em, clock, rm, spawnRules, world, rng)

	const dt = 1.0 / 60
	frames := int(*seconds * 60)
	fmt.Printf("模拟 %.0f 秒（%d 帧），种子 %d\n\n", *seconds, frames, *seed)

	for frame := 0; frame < frames; frame++ {
		input := scriptedInput(clock.Now())
		clock.Advance(dt)

		skillSystem.Update(input)
		playerSystem.Update(dt, input)
		weaponSystem.Update(input)
		enemySystem.Update(dt)
		projectileSystem.Update(dt)
		lifetimeSystem.Update(dt)
		combatSystem.Update()
		spawnSystem.Update()
		em.RemoveMarkedEntities()

		if frame%300 == 299 {
			printStatus(em, clock.Now())
		}

		if game.GetGameState().GameOver {
			fmt.Printf("\n玩家在 %.1f 秒阵亡\n", clock.Now())
			break
		}
	}

	fmt.Printf("\n最终得分: %d\n", game.GetGameState().GetScore())
	if gameplay.ScorePerKill > 0 {
		fmt.Printf("击杀数: %d\n", game.GetGameState().GetScore()/gameplay.ScorePerKill)
	}
	fmt.Printf("存活敌人: %d\n", countEnemies(em))
	fmt.Printf("音效触发: %v\n", sounds.counts)
	if !game.GetGameState().GameOver {
		fmt.Printf("玩家存活到模拟结束\n")
	}
}

// scriptedInput 按时间轴生成脚本输入
// 持续向右下移动并按住射击；第 3 秒按爆发键，第 8 秒按治疗键，
// 第 15 秒按切换键换成近战
func scriptedInput(now float64) utils.InputSnapshot {
	input := utils.InputSnapshot{
		MoveX:     1,
		MoveY:     1,
		MouseX:    config.GameWindowWidth/2 + 200,
		MouseY:    config.GameWindowHeight / 2,
		MouseHeld: true,
	}
	switch {
	case at(now, 3):
		input.SkillJustPressed[1] = true
	case at(now, 8):
		input.SkillJustPressed[0] = true
	case at(now, 15):
		input.SkillJustPressed[2] = true
	}
	return input
}

// at 判断 now 是否恰好落在第 t 秒的第一帧上
func at(now, t float64) bool {
	return now >= t && now < t+1.0/60
}

func printStatus(em *ecs.EntityManager, now float64) {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	health := 0
	if len(players) > 0 {
		if player, ok := ecs.GetComponent[*components.PlayerComponent](em, players[0]); ok {
			health = player.Health
		}
	}
	fmt.Printf("t=%5.1fs  敌人 %2d  得分 %4d  生命 %d\n",
		now, countEnemies(em), game.GetGameState().GetScore(), health)
}

func countEnemies(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](em))
}

func fail(format string, args ...any) {
	fmt.Printf("❌ "+format+"\n", args...)
	os.Exit(1)
}
