// check_data 校验 data/ 下的全部配置文件
//
// 从项目根目录运行：
//
//	go run ./cmd/check_data
//
// 任何一份配置缺失或非法都以非零状态码退出，可挂在 CI 里当启动前检查。
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/survivors/pkg/config"
)

func main() {
	failures := 0

	gameplay, err := config.LoadGameplayConfig("data/gameplay.yaml")
	if err != nil {
		fmt.Printf("❌ data/gameplay.yaml: %v\n", err)
		failures++
	} else {
		fmt.Printf("✅ data/gameplay.yaml: 玩家速度 %.0f, 生命上限 %d, 接触伤害 %d\n",
			gameplay.Player.Speed, gameplay.Player.MaxHealth, gameplay.ContactDamage)
	}

	skills, err := config.LoadSkillsConfig("data/skills.yaml")
	if err != nil {
		fmt.Printf("❌ data/skills.yaml: %v\n", err)
		failures++
	} else {
		fmt.Printf("✅ data/skills.yaml: 扇形 %d 路, 环形 %d 发, 治疗冷却 %.0f 秒\n",
			len(skills.FanAngles), skills.NovaCount, skills.HealCooldown)
	}

	spawnRules, err := config.LoadSpawnRules("data/spawn_rules.yaml")
	if err != nil {
		fmt.Printf("❌ data/spawn_rules.yaml: %v\n", err)
		failures++
	} else {
		fmt.Printf("✅ data/spawn_rules.yaml: %d 种敌人, 刷怪周期 %.2f 秒, 上限 %d 只\n",
			len(spawnRules.Enemies), spawnRules.Period, spawnRules.MaxEnemies)
	}

	world, err := config.LoadWorldConfig("data/levels/world.yaml")
	if err != nil {
		fmt.Printf("❌ data/levels/world.yaml: %v\n", err)
		failures++
	} else {
		fmt.Printf("✅ data/levels/world.yaml: %dx%d 瓦片, %d 个出怪点, %d 个障碍物\n",
			world.WidthTiles, world.HeightTiles, len(world.SpawnPoints), len(world.Obstacles))
	}

	// 刷怪表引用的敌人种类必须都能在世界里落地
	if spawnRules != nil && world != nil {
		if len(world.SpawnPoints) == 0 {
			fmt.Printf("❌ 世界没有出怪点，刷怪系统将永远空转\n")
			failures++
		}
	}

	if failures > 0 {
		fmt.Printf("\n❌ %d 份配置有问题\n", failures)
		os.Exit(1)
	}
	fmt.Printf("\n✅ 全部配置就绪\n")
}
