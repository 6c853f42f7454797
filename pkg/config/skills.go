package config

import (
	"fmt"

	"github.com/gonewx/survivors/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ProjectileStats 单种弹道的数值配置
type ProjectileStats struct {
	Speed       float64 `yaml:"speed"`       // 飞行速度（像素/秒）
	Lifetime    float64 `yaml:"lifetime"`    // 存活时长（秒）
	SpawnOffset float64 `yaml:"spawnOffset"` // 出生点沿朝向的偏移距离
}

// SkillsConfig 技能与开火节奏配置
//
// 三个技能槽：治疗、爆发（按武器模式分别计冷却）、武器切换。
// 所有时长单位为秒，角度单位为度。
type SkillsConfig struct {
	HealCooldown float64 `yaml:"healCooldown"` // 技能1冷却
	HealAmount   int     `yaml:"healAmount"`   // 技能1回复量

	BurstCooldown    float64   `yaml:"burstCooldown"`    // 技能2冷却（枪/剑各自独立计时）
	BurstWindow      float64   `yaml:"burstWindow"`      // 枪模式爆发窗口时长
	BurstShotSpacing float64   `yaml:"burstShotSpacing"` // 爆发窗口内连射的最小间隔
	FanAngles        []float64 `yaml:"fanAngles"`        // 扇形弹幕的角度偏移

	NovaCount    int     `yaml:"novaCount"`    // 剑模式环形斩击数量
	NovaDistance float64 `yaml:"novaDistance"` // 环形斩击出生距离
	NovaLifetime float64 `yaml:"novaLifetime"` // 环形斩击存活时长
	NovaSpeed    float64 `yaml:"novaSpeed"`    // 环形斩击速度

	SwitchCooldown float64 `yaml:"switchCooldown"` // 技能3（切换武器）冷却

	GunCooldown   float64 `yaml:"gunCooldown"`   // 枪械全局射击间隔
	SlashCooldown float64 `yaml:"slashCooldown"` // 挥砍间隔
	ClickSpacing  float64 `yaml:"clickSpacing"`  // 剑模式按住鼠标的采样间隔

	WeaponDistance float64 `yaml:"weaponDistance"` // 武器环绕玩家的距离

	Bullet ProjectileStats `yaml:"bullet"` // 枪械子弹
	Slash  ProjectileStats `yaml:"slash"`  // 默认挥砍
}

// LoadSkillsConfig 从 YAML 文件加载技能配置
func LoadSkillsConfig(filepath string) (*SkillsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills config %s: %w", filepath, err)
	}

	var config SkillsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse skills YAML from %s: %w", filepath, err)
	}

	if err := validateSkillsConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid skills config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateSkillsConfig 验证技能配置的合法性
func validateSkillsConfig(config *SkillsConfig) error {
	for name, v := range map[string]float64{
		"healCooldown":   config.HealCooldown,
		"burstCooldown":  config.BurstCooldown,
		"switchCooldown": config.SwitchCooldown,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %f", name, v)
		}
	}
	if config.HealAmount <= 0 {
		return fmt.Errorf("healAmount must be positive, got %d", config.HealAmount)
	}
	if config.BurstWindow <= 0 {
		return fmt.Errorf("burstWindow must be positive, got %f", config.BurstWindow)
	}
	if len(config.FanAngles) == 0 {
		return fmt.Errorf("fanAngles must list at least one angle")
	}
	if config.NovaCount <= 0 {
		return fmt.Errorf("novaCount must be positive, got %d", config.NovaCount)
	}
	if config.NovaLifetime <= 0 || config.NovaSpeed <= 0 {
		return fmt.Errorf("nova lifetime and speed must be positive, got %f and %f",
			config.NovaLifetime, config.NovaSpeed)
	}
	if config.GunCooldown <= 0 {
		return fmt.Errorf("gunCooldown must be positive, got %f", config.GunCooldown)
	}
	if config.SlashCooldown <= 0 {
		return fmt.Errorf("slashCooldown must be positive, got %f", config.SlashCooldown)
	}
	if config.ClickSpacing < 0 {
		return fmt.Errorf("clickSpacing cannot be negative, got %f", config.ClickSpacing)
	}
	if config.WeaponDistance <= 0 {
		return fmt.Errorf("weaponDistance must be positive, got %f", config.WeaponDistance)
	}
	if err := validateProjectileStats("bullet", config.Bullet); err != nil {
		return err
	}
	if err := validateProjectileStats("slash", config.Slash); err != nil {
		return err
	}
	return nil
}

func validateProjectileStats(name string, stats ProjectileStats) error {
	if stats.Speed <= 0 {
		return fmt.Errorf("%s.speed must be positive, got %f", name, stats.Speed)
	}
	if stats.Lifetime <= 0 {
		return fmt.Errorf("%s.lifetime must be positive, got %f", name, stats.Lifetime)
	}
	if stats.SpawnOffset < 0 {
		return fmt.Errorf("%s.spawnOffset cannot be negative, got %f", name, stats.SpawnOffset)
	}
	return nil
}

// SlotCooldown 返回指定技能槽的冷却时长
// 槽位越界时返回 0
func (c *SkillsConfig) SlotCooldown(slot int) float64 {
	switch slot {
	case 0:
		return c.HealCooldown
	case 1:
		return c.BurstCooldown
	case 2:
		return c.SwitchCooldown
	}
	return 0
}
