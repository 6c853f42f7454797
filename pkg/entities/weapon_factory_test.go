package entities

import (
	"testing"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
)

// TestNewWeaponEntity 测试武器实体的创建
func TestNewWeaponEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	entityID := NewWeaponEntity(em, stubLoader{}, 1280, 960, 140)
	if entityID == 0 {
		t.Fatal("Expected non-zero entity ID")
	}

	weapon, ok := ecs.GetComponent[*components.WeaponComponent](em, entityID)
	if !ok {
		t.Fatal("Expected WeaponComponent to be present")
	}
	if weapon.Mode != components.WeaponGun {
		t.Errorf("Expected initial gun mode, got %v", weapon.Mode)
	}
	if weapon.Distance != 140 {
		t.Errorf("Expected distance 140, got %f", weapon.Distance)
	}
	if weapon.DirX != 0 || weapon.DirY != 1 {
		t.Errorf("Expected initial aim (0, 1), got (%f, %f)", weapon.DirX, weapon.DirY)
	}
	if weapon.GunImage == nil || weapon.SwordImage == nil {
		t.Fatal("Expected both mode images to be loaded at creation")
	}
	if weapon.GunImage == weapon.SwordImage {
		t.Error("Gun and sword images must be distinct")
	}
	if weapon.Switches != 0 {
		t.Errorf("Expected zero switches, got %d", weapon.Switches)
	}

	// 初始位置在玩家正下方 distance 处
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, entityID)
	if !ok {
		t.Fatal("Expected PositionComponent to be present")
	}
	if pos.X != 1280 || pos.Y != 1100 {
		t.Errorf("Expected position (1280, 1100), got (%f, %f)", pos.X, pos.Y)
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, entityID)
	if !ok {
		t.Fatal("Expected SpriteComponent to be present")
	}
	if sprite.Image != weapon.GunImage {
		t.Error("Expected initial sprite image to be the gun image")
	}
}
