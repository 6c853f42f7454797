package config

import (
	"path/filepath"
	"testing"
)

const validSkillsYAML = `
healCooldown: 60
healAmount: 20
burstCooldown: 20
burstWindow: 5
burstShotSpacing: 0.5
fanAngles: [-30, 0, 30]
novaCount: 8
novaDistance: 100
novaLifetime: 0.3
novaSpeed: 1000
switchCooldown: 10
gunCooldown: 0.1
slashCooldown: 0.4
clickSpacing: 0.5
weaponDistance: 140
bullet:
  speed: 1200
  lifetime: 1.0
  spawnOffset: 50
slash:
  speed: 400
  lifetime: 0.5
  spawnOffset: 100
`

func TestLoadSkillsConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("加载有效配置文件", func(t *testing.T) {
		configPath := writeConfigFile(t, tempDir, "skills_valid.yaml", validSkillsYAML)

		config, err := LoadSkillsConfig(configPath)
		if err != nil {
			t.Fatalf("LoadSkillsConfig failed: %v", err)
		}

		if config.HealCooldown != 60 || config.BurstCooldown != 20 || config.SwitchCooldown != 10 {
			t.Errorf("cooldowns: expected (60, 20, 10), got (%f, %f, %f)",
				config.HealCooldown, config.BurstCooldown, config.SwitchCooldown)
		}
		if config.HealAmount != 20 {
			t.Errorf("healAmount: expected 20, got %d", config.HealAmount)
		}
		if len(config.FanAngles) != 3 || config.FanAngles[0] != -30 || config.FanAngles[2] != 30 {
			t.Errorf("fanAngles: expected [-30 0 30], got %v", config.FanAngles)
		}
		if config.NovaCount != 8 || config.NovaSpeed != 1000 {
			t.Errorf("nova: expected count 8 speed 1000, got %d and %f",
				config.NovaCount, config.NovaSpeed)
		}
		if config.Bullet.Speed != 1200 || config.Bullet.Lifetime != 1.0 {
			t.Errorf("bullet: expected speed 1200 lifetime 1.0, got %f and %f",
				config.Bullet.Speed, config.Bullet.Lifetime)
		}
		if config.Slash.SpawnOffset != 100 {
			t.Errorf("slash spawnOffset: expected 100, got %f", config.Slash.SpawnOffset)
		}
	})

	t.Run("槽位冷却查询", func(t *testing.T) {
		configPath := writeConfigFile(t, tempDir, "skills_slots.yaml", validSkillsYAML)
		config, err := LoadSkillsConfig(configPath)
		if err != nil {
			t.Fatalf("LoadSkillsConfig failed: %v", err)
		}

		expected := []float64{60, 20, 10}
		for slot, want := range expected {
			if got := config.SlotCooldown(slot); got != want {
				t.Errorf("SlotCooldown(%d): expected %f, got %f", slot, want, got)
			}
		}
		if got := config.SlotCooldown(3); got != 0 {
			t.Errorf("SlotCooldown(3): expected 0 for unknown slot, got %f", got)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := LoadSkillsConfig(filepath.Join(tempDir, "missing.yaml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("缺少扇形角度时验证失败", func(t *testing.T) {
		configPath := writeConfigFile(t, tempDir, "skills_no_fan.yaml", `
healCooldown: 60
healAmount: 20
burstCooldown: 20
burstWindow: 5
burstShotSpacing: 0.5
fanAngles: []
novaCount: 8
novaDistance: 100
novaLifetime: 0.3
novaSpeed: 1000
switchCooldown: 10
gunCooldown: 0.1
slashCooldown: 0.4
clickSpacing: 0.5
weaponDistance: 140
bullet: {speed: 1200, lifetime: 1.0, spawnOffset: 50}
slash: {speed: 400, lifetime: 0.5, spawnOffset: 100}
`)
		if _, err := LoadSkillsConfig(configPath); err == nil {
			t.Error("Expected validation error for empty fanAngles")
		}
	})

	t.Run("弹道数值非法时验证失败", func(t *testing.T) {
		configPath := writeConfigFile(t, tempDir, "skills_bad_bullet.yaml", `
healCooldown: 60
healAmount: 20
burstCooldown: 20
burstWindow: 5
burstShotSpacing: 0.5
fanAngles: [-30, 0, 30]
novaCount: 8
novaDistance: 100
novaLifetime: 0.3
novaSpeed: 1000
switchCooldown: 10
gunCooldown: 0.1
slashCooldown: 0.4
clickSpacing: 0.5
weaponDistance: 140
bullet: {speed: 0, lifetime: 1.0, spawnOffset: 50}
slash: {speed: 400, lifetime: 0.5, spawnOffset: 100}
`)
		if _, err := LoadSkillsConfig(configPath); err == nil {
			t.Error("Expected validation error for zero bullet speed")
		}
	})
}
