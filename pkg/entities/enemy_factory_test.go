package entities

import (
	"testing"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
)

func testEnemyStats() *config.EnemyStats {
	return &config.EnemyStats{
		Speed:        200,
		FrameRate:    6,
		HitboxInsetX: -20,
		HitboxInsetY: -40,
		HitDuration:  0.2,
		DeathDelay:   0.2,
	}
}

// TestNewEnemyEntity 测试敌人实体的创建
func TestNewEnemyEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	entityID := NewEnemyEntity(em, stubLoader{}, "bat", testEnemyStats(), 300, 400)
	if entityID == 0 {
		t.Fatal("Expected non-zero entity ID")
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, entityID)
	if !ok {
		t.Fatal("Expected PositionComponent to be present")
	}
	if pos.X != 300 || pos.Y != 400 {
		t.Errorf("Expected position (300, 400), got (%f, %f)", pos.X, pos.Y)
	}

	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, entityID)
	if !ok {
		t.Fatal("Expected EnemyComponent to be present")
	}
	if enemy.Kind != "bat" {
		t.Errorf("Expected kind bat, got %s", enemy.Kind)
	}
	if enemy.Speed != 200 {
		t.Errorf("Expected speed 200, got %f", enemy.Speed)
	}
	if enemy.Hit || enemy.Dying {
		t.Error("Enemy must start neither hit nor dying")
	}
	if len(enemy.Frames) == 0 || len(enemy.Frames) != len(enemy.Masks) {
		t.Fatalf("Frames and masks misaligned: %d vs %d", len(enemy.Frames), len(enemy.Masks))
	}

	// 死亡剪影已预生成，尺寸与首帧掩码一致
	if enemy.Silhouette == nil {
		t.Fatal("Expected silhouette to be prepared at creation")
	}
	bounds := enemy.Silhouette.Bounds()
	if bounds.Dx() != enemy.Masks[0].W || bounds.Dy() != enemy.Masks[0].H {
		t.Errorf("Silhouette size %dx%d does not match mask %dx%d",
			bounds.Dx(), bounds.Dy(), enemy.Masks[0].W, enemy.Masks[0].H)
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, entityID)
	if !ok {
		t.Fatal("Expected SpriteComponent to be present")
	}
	if sprite.Image != enemy.Frames[0] {
		t.Error("Expected initial sprite image to be the first frame")
	}
	if sprite.Width != 64 || sprite.Height != 64 {
		t.Errorf("Expected sprite size 64x64, got %fx%f", sprite.Width, sprite.Height)
	}

	hitbox, ok := ecs.GetComponent[*components.HitboxComponent](em, entityID)
	if !ok {
		t.Fatal("Expected HitboxComponent to be present")
	}
	if hitbox.InsetX != -20 || hitbox.InsetY != -40 {
		t.Errorf("Expected hitbox inset (-20, -40), got (%f, %f)", hitbox.InsetX, hitbox.InsetY)
	}
}
