package systems

import (
	"math"
	"testing"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
)

func TestProjectileMovesStraight(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewProjectileSystem(em)

	id := createTestProjectile(em, 100, 100, 1, 0, components.ProjectileBullet)

	// 1200 像素/秒直线飞行
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 220 || pos.Y != 100 {
		t.Errorf("Expected position (220, 100), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestProjectileIgnoresObstacles(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewProjectileSystem(em)

	id := createTestProjectile(em, 100, 100, 1, 0, components.ProjectileBullet)
	createTestObstacle(em, 160, 100, 64, 64)

	// 弹道不参与障碍物碰撞,直接穿过
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 220 {
		t.Errorf("Expected projectile to pass through obstacle to X=220, got %f", pos.X)
	}
}

func TestProjectileDiagonal(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewProjectileSystem(em)

	inv := 1 / math.Sqrt2
	id := createTestProjectile(em, 0, 0, inv, inv, components.ProjectileSlash)
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	proj.Speed = 1000

	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	expected := 100 * inv
	if math.Abs(pos.X-expected) > 1e-9 || math.Abs(pos.Y-expected) > 1e-9 {
		t.Errorf("Expected position (%f, %f), got (%f, %f)", expected, expected, pos.X, pos.Y)
	}
}
