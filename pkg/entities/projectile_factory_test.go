package entities

import (
	"math"
	"testing"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
)

// TestNewBulletEntity 测试子弹实体的创建
func TestNewBulletEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.ProjectileStats{Speed: 1200, Lifetime: 1.0, SpawnOffset: 50}

	entityID := NewBulletEntity(em, stubLoader{}, stats, 100, 200, 1, 0)
	if entityID == 0 {
		t.Fatal("Expected non-zero entity ID")
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, entityID)
	if !ok {
		t.Fatal("Expected PositionComponent to be present")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Expected position (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, entityID)
	if !ok {
		t.Fatal("Expected ProjectileComponent to be present")
	}
	if proj.Kind != components.ProjectileBullet {
		t.Errorf("Expected bullet kind, got %v", proj.Kind)
	}
	if proj.DirX != 1 || proj.DirY != 0 {
		t.Errorf("Expected direction (1, 0), got (%f, %f)", proj.DirX, proj.DirY)
	}
	if proj.Speed != 1200 {
		t.Errorf("Expected speed 1200, got %f", proj.Speed)
	}
	if proj.Mask == nil {
		t.Error("Expected projectile mask to be set")
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, entityID)
	if !ok {
		t.Fatal("Expected LifetimeComponent to be present")
	}
	if lifetime.MaxLifetime != 1.0 {
		t.Errorf("Expected max lifetime 1.0, got %f", lifetime.MaxLifetime)
	}
	if lifetime.CurrentLifetime != 0 || lifetime.IsExpired {
		t.Error("Lifetime must start fresh")
	}

	// 子弹贴图不旋转
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, entityID)
	if !ok {
		t.Fatal("Expected SpriteComponent to be present")
	}
	if sprite.Rotation != 0 {
		t.Errorf("Expected no rotation for bullets, got %f", sprite.Rotation)
	}
}

// TestNewSlashEntity 测试挥砍实体的创建和贴图旋转
func TestNewSlashEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.ProjectileStats{Speed: 400, Lifetime: 0.5, SpawnOffset: 100}

	tests := []struct {
		name         string
		dirX, dirY   float64
		wantRotation float64
	}{
		{"right", 1, 0, 0},
		{"down", 0, 1, -90},
		{"up", 0, -1, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entityID := NewSlashEntity(em, stubLoader{}, stats, 50, 60, tt.dirX, tt.dirY)

			proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, entityID)
			if !ok {
				t.Fatal("Expected ProjectileComponent to be present")
			}
			if proj.Kind != components.ProjectileSlash {
				t.Errorf("Expected slash kind, got %v", proj.Kind)
			}
			if proj.Speed != 400 {
				t.Errorf("Expected speed 400, got %f", proj.Speed)
			}

			sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, entityID)
			if !ok {
				t.Fatal("Expected SpriteComponent to be present")
			}
			if math.Abs(sprite.Rotation-tt.wantRotation) > 1e-9 {
				t.Errorf("Expected rotation %f, got %f", tt.wantRotation, sprite.Rotation)
			}

			lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, entityID)
			if !ok {
				t.Fatal("Expected LifetimeComponent to be present")
			}
			if lifetime.MaxLifetime != 0.5 {
				t.Errorf("Expected max lifetime 0.5, got %f", lifetime.MaxLifetime)
			}
		})
	}
}
