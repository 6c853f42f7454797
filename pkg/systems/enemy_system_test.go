package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/game"
)

func TestEnemyChasesPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	system := NewEnemySystem(em, clock)

	createTestPlayer(em, 640, 360)
	id := createTestEnemy(em, 640, 260)

	// 敌人在玩家正上方,以 200 像素/秒向下追击
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 640 {
		t.Errorf("Expected X unchanged at 640, got %f", pos.X)
	}
	if pos.Y != 280 {
		t.Errorf("Expected Y=280 after chasing down, got %f", pos.Y)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if enemy.DirX != 0 || enemy.DirY != 1 {
		t.Errorf("Expected direction (0, 1), got (%f, %f)", enemy.DirX, enemy.DirY)
	}
}

func TestEnemyAtPlayerPositionDoesNotMove(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	system := NewEnemySystem(em, clock)

	createTestPlayer(em, 640, 360)
	id := createTestEnemy(em, 640, 360)

	// 与玩家完全重合时方向未定义,本帧不移动且不得出错
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 640 || pos.Y != 360 {
		t.Errorf("Expected position unchanged (640, 360), got (%f, %f)", pos.X, pos.Y)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if enemy.DirX != 0 || enemy.DirY != 0 {
		t.Errorf("Expected zero direction, got (%f, %f)", enemy.DirX, enemy.DirY)
	}
}

func TestEnemyBlockedByObstacle(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	system := NewEnemySystem(em, clock)

	createTestPlayer(em, 800, 500)
	id := createTestEnemy(em, 500, 500)
	createTestObstacle(em, 560, 500, 64, 64)

	// 碰撞盒 44x24,右移 20 撞上 (528,468)-(592,532) 的障碍物
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 506 {
		t.Errorf("Expected X=506 (hitbox flush against obstacle), got %f", pos.X)
	}
}

func TestEnemyHitWindowSkipsObstacles(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	system := NewEnemySystem(em, clock)

	createTestPlayer(em, 800, 500)
	id := createTestEnemy(em, 500, 500)
	createTestObstacle(em, 560, 500, 64, 64)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	HitEnemy(enemy, clock.Now())

	// 受击窗口内跳过障碍物解算,继续直线追击
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 520 {
		t.Errorf("Expected X=520 (obstacle ignored while hit), got %f", pos.X)
	}
}

func TestEnemyHitWindowExpires(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	system := NewEnemySystem(em, clock)

	createTestPlayer(em, 800, 500)
	id := createTestEnemy(em, 500, 500)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	HitEnemy(enemy, clock.Now())

	// 0.25 秒后窗口到期
	clock.Advance(0.25)
	system.Update(1.0 / 60)

	if enemy.Hit {
		t.Error("Hit window should expire after 0.2 seconds")
	}
}

func TestHitEnemyNoOpWhileInvulnerable(t *testing.T) {
	enemy := &components.EnemyComponent{HitDuration: 0.2}

	if !HitEnemy(enemy, 1.0) {
		t.Error("First hit should apply")
	}
	if enemy.HitUntil != 1.2 {
		t.Errorf("Expected HitUntil=1.2, got %f", enemy.HitUntil)
	}

	// 窗口内重复受击是空操作,不延长窗口
	if HitEnemy(enemy, 1.1) {
		t.Error("Repeated hit within the window should be a no-op")
	}
	if enemy.HitUntil != 1.2 {
		t.Errorf("HitUntil should stay 1.2, got %f", enemy.HitUntil)
	}
}

func TestDestroyEnemyFirstCallWins(t *testing.T) {
	enemy := &components.EnemyComponent{DeathDelay: 0.2}

	if !DestroyEnemy(enemy, nil, 1.0) {
		t.Error("First destroy should apply")
	}
	if !enemy.Dying || enemy.DeathAt != 1.0 {
		t.Errorf("Expected Dying with DeathAt=1.0, got Dying=%v DeathAt=%f", enemy.Dying, enemy.DeathAt)
	}

	// 重复销毁不重置死亡计时
	if DestroyEnemy(enemy, nil, 1.1) {
		t.Error("Repeated destroy should be a no-op")
	}
	if enemy.DeathAt != 1.0 {
		t.Errorf("DeathAt should stay 1.0, got %f", enemy.DeathAt)
	}
}

func TestDestroyEnemySwapsToSilhouette(t *testing.T) {
	enemy := &components.EnemyComponent{
		DeathDelay: 0.2,
		Silhouette: ebiten.NewImage(64, 64),
	}
	sprite := &components.SpriteComponent{Image: ebiten.NewImage(64, 64)}

	DestroyEnemy(enemy, sprite, 1.0)

	if sprite.Image != enemy.Silhouette {
		t.Error("Destroy should swap the sprite to the death silhouette")
	}
}

func TestEnemyDyingFreezesAndRemoves(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	system := NewEnemySystem(em, clock)

	createTestPlayer(em, 800, 500)
	id := createTestEnemy(em, 500, 500)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	DestroyEnemy(enemy, nil, clock.Now())

	// 死亡延迟内定格:不移动、不推进动画
	clock.Advance(0.1)
	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 500 || pos.Y != 500 {
		t.Errorf("Dying enemy should not move, got (%f, %f)", pos.X, pos.Y)
	}
	if enemy.FrameIndex != 0 {
		t.Errorf("Dying enemy should not animate, got FrameIndex=%f", enemy.FrameIndex)
	}
	if !em.HasEntity(id) {
		t.Error("Enemy should still exist during the death delay")
	}

	// 延迟结束后移除
	clock.Advance(0.15)
	system.Update(0.1)
	em.RemoveMarkedEntities()

	if em.HasEntity(id) {
		t.Error("Enemy should be removed after the death delay")
	}
}

func TestEnemyAnimationAdvances(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := game.NewClock()
	system := NewEnemySystem(em, clock)

	createTestPlayer(em, 800, 500)
	id := createTestEnemy(em, 500, 500)

	system.Update(0.1)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if enemy.FrameIndex != 0.6 {
		t.Errorf("Expected FrameIndex=0.6 at 6 frames/second, got %f", enemy.FrameIndex)
	}
}
