package config

import (
	"fmt"
	"sort"

	"github.com/gonewx/survivors/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人种类的属性配置
type EnemyStats struct {
	Speed        float64 `yaml:"speed"`        // 追击速度（像素/秒）
	FrameRate    float64 `yaml:"frameRate"`    // 动画帧率（帧/秒）
	HitboxInsetX float64 `yaml:"hitboxInsetX"` // 碰撞盒水平收缩量
	HitboxInsetY float64 `yaml:"hitboxInsetY"` // 碰撞盒垂直收缩量
	HitDuration  float64 `yaml:"hitDuration"`  // 受击无敌/变色时长（秒）
	DeathDelay   float64 `yaml:"deathDelay"`   // 死亡剪影停留时长（秒）
}

// SpawnRulesConfig 敌人生成规则配置
type SpawnRulesConfig struct {
	Period            float64               `yaml:"period"`            // 生成周期（秒）
	MaxEnemies        int                   `yaml:"maxEnemies"`        // 并存敌人上限
	MinPlayerDistance float64               `yaml:"minPlayerDistance"` // 生成点距玩家的最小距离
	MaxAttempts       int                   `yaml:"maxAttempts"`       // 单次生成的最大尝试次数
	Enemies           map[string]EnemyStats `yaml:"enemies"`           // 敌人种类 -> 属性
}

// LoadSpawnRules 从 YAML 文件加载敌人生成规则配置
func LoadSpawnRules(filePath string) (*SpawnRulesConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn rules file: %w", err)
	}

	var config SpawnRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spawn rules YAML: %w", err)
	}

	if err := validateSpawnRules(&config); err != nil {
		return nil, fmt.Errorf("invalid spawn rules config: %w", err)
	}

	return &config, nil
}

// validateSpawnRules 验证配置的有效性
func validateSpawnRules(config *SpawnRulesConfig) error {
	if config.Period <= 0 {
		return fmt.Errorf("period must be positive, got %f", config.Period)
	}
	if config.MaxEnemies <= 0 {
		return fmt.Errorf("maxEnemies must be positive, got %d", config.MaxEnemies)
	}
	if config.MinPlayerDistance < 0 {
		return fmt.Errorf("minPlayerDistance cannot be negative, got %f", config.MinPlayerDistance)
	}
	if config.MaxAttempts <= 0 {
		return fmt.Errorf("maxAttempts must be positive, got %d", config.MaxAttempts)
	}
	if len(config.Enemies) == 0 {
		return fmt.Errorf("at least one enemy kind is required")
	}

	for kind, stats := range config.Enemies {
		if kind == "" {
			return fmt.Errorf("enemy kind name cannot be empty")
		}
		if stats.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %f", kind, stats.Speed)
		}
		if stats.FrameRate <= 0 {
			return fmt.Errorf("enemy %s: frameRate must be positive, got %f", kind, stats.FrameRate)
		}
		if stats.HitDuration <= 0 {
			return fmt.Errorf("enemy %s: hitDuration must be positive, got %f", kind, stats.HitDuration)
		}
		if stats.DeathDelay <= 0 {
			return fmt.Errorf("enemy %s: deathDelay must be positive, got %f", kind, stats.DeathDelay)
		}
	}

	return nil
}

// Kinds 返回按名称排序的敌人种类列表
// 排序保证随机选择在固定种子下可复现
func (c *SpawnRulesConfig) Kinds() []string {
	kinds := make([]string, 0, len(c.Enemies))
	for kind := range c.Enemies {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// GetEnemyStats 获取指定敌人种类的属性
// 种类不存在时返回 nil 和 false
func (c *SpawnRulesConfig) GetEnemyStats(kind string) (*EnemyStats, bool) {
	stats, ok := c.Enemies[kind]
	if !ok {
		return nil, false
	}
	return &stats, true
}
