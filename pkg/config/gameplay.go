package config

import (
	"fmt"

	"github.com/gonewx/survivors/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PlayerStats 玩家属性配置
type PlayerStats struct {
	Speed               float64 `yaml:"speed"`               // 移动速度（像素/秒）
	MaxHealth           int     `yaml:"maxHealth"`           // 生命上限
	HitboxInsetX        float64 `yaml:"hitboxInsetX"`        // 碰撞盒水平收缩量（负值表示比贴图窄）
	HitboxInsetY        float64 `yaml:"hitboxInsetY"`        // 碰撞盒垂直收缩量
	InvulnerableSeconds float64 `yaml:"invulnerableSeconds"` // 受击后的无敌时长（秒）
	BlinkInterval       float64 `yaml:"blinkInterval"`       // 无敌期间闪烁切换间隔（秒）
	WalkFrameRate       float64 `yaml:"walkFrameRate"`       // 行走动画帧率（帧/秒）
}

// GameplayConfig 核心玩法数值配置
type GameplayConfig struct {
	Player        PlayerStats `yaml:"player"`
	ContactDamage int         `yaml:"contactDamage"` // 敌人接触伤害
	ScorePerKill  int         `yaml:"scorePerKill"`  // 击杀得分
}

// LoadGameplayConfig 从 YAML 文件加载玩法配置
func LoadGameplayConfig(filepath string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", filepath, err)
	}

	var config GameplayConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay YAML from %s: %w", filepath, err)
	}

	if err := validateGameplayConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid gameplay config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateGameplayConfig 验证玩法配置的合法性
func validateGameplayConfig(config *GameplayConfig) error {
	if config.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %f", config.Player.Speed)
	}
	if config.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %d", config.Player.MaxHealth)
	}
	if config.Player.InvulnerableSeconds < 0 {
		return fmt.Errorf("player.invulnerableSeconds cannot be negative, got %f", config.Player.InvulnerableSeconds)
	}
	if config.Player.BlinkInterval <= 0 {
		return fmt.Errorf("player.blinkInterval must be positive, got %f", config.Player.BlinkInterval)
	}
	if config.Player.WalkFrameRate <= 0 {
		return fmt.Errorf("player.walkFrameRate must be positive, got %f", config.Player.WalkFrameRate)
	}
	if config.ContactDamage < 0 {
		return fmt.Errorf("contactDamage cannot be negative, got %d", config.ContactDamage)
	}
	if config.ScorePerKill < 0 {
		return fmt.Errorf("scorePerKill cannot be negative, got %d", config.ScorePerKill)
	}
	return nil
}
