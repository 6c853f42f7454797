package systems

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/utils"
)

// createTestWeapon 创建挂在玩家身上的测试武器
func createTestWeapon(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.WeaponComponent{
		Mode:     components.WeaponGun,
		Distance: 140,
		DirX:     0,
		DirY:     1,
	})
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.SpriteComponent{Width: 64, Height: 64, Alpha: 1})
	return id
}

func TestWeaponAimsAtMouse(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewWeaponSystem(em)

	createTestPlayer(em, 1000, 1000)
	id := createTestWeapon(em)

	// 鼠标在屏幕中心 (640,360) 右侧 400 像素处
	system.Update(utils.InputSnapshot{MouseX: 1040, MouseY: 360})

	weapon, _ := ecs.GetComponent[*components.WeaponComponent](em, id)
	if weapon.DirX != 1 || weapon.DirY != 0 {
		t.Errorf("Expected aim direction (1, 0), got (%f, %f)", weapon.DirX, weapon.DirY)
	}
	if weapon.Rotation != 0 {
		t.Errorf("Expected rotation 0 when aiming right, got %f", weapon.Rotation)
	}

	// 武器位置 = 玩家中心 + 方向 × 140
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 1140 || pos.Y != 1000 {
		t.Errorf("Expected weapon at (1140, 1000), got (%f, %f)", pos.X, pos.Y)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.FlipY {
		t.Error("Aiming right should not flip the sprite")
	}
}

func TestWeaponAimLeftFlips(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewWeaponSystem(em)

	createTestPlayer(em, 1000, 1000)
	id := createTestWeapon(em)

	// 鼠标在屏幕中心左侧
	system.Update(utils.InputSnapshot{MouseX: 240, MouseY: 360})

	weapon, _ := ecs.GetComponent[*components.WeaponComponent](em, id)
	if weapon.DirX != -1 || weapon.DirY != 0 {
		t.Errorf("Expected aim direction (-1, 0), got (%f, %f)", weapon.DirX, weapon.DirY)
	}
	if weapon.Rotation != -180 {
		t.Errorf("Expected raw rotation -180, got %f", weapon.Rotation)
	}

	// 瞄准左半边:旋转取绝对值,再垂直翻转
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Rotation != 180 {
		t.Errorf("Expected sprite rotation 180, got %f", sprite.Rotation)
	}
	if !sprite.FlipY {
		t.Error("Aiming left should flip the sprite vertically")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 860 || pos.Y != 1000 {
		t.Errorf("Expected weapon at (860, 1000), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestWeaponAimDiagonal(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewWeaponSystem(em)

	createTestPlayer(em, 1000, 1000)
	id := createTestWeapon(em)

	// 右下 45 度
	system.Update(utils.InputSnapshot{MouseX: 940, MouseY: 660})

	weapon, _ := ecs.GetComponent[*components.WeaponComponent](em, id)
	inv := 1 / math.Sqrt2
	if math.Abs(weapon.DirX-inv) > 1e-9 || math.Abs(weapon.DirY-inv) > 1e-9 {
		t.Errorf("Expected aim direction (%f, %f), got (%f, %f)", inv, inv, weapon.DirX, weapon.DirY)
	}
	// atan2(x, y) 以朝上为零旋转:右下 45 度对应 -45
	if math.Abs(weapon.Rotation-(-45)) > 1e-9 {
		t.Errorf("Expected rotation -45, got %f", weapon.Rotation)
	}
}

func TestWeaponKeepsAimWhenMouseCentered(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewWeaponSystem(em)

	createTestPlayer(em, 1000, 1000)
	id := createTestWeapon(em)

	system.Update(utils.InputSnapshot{MouseX: 1040, MouseY: 360})

	// 鼠标回到屏幕正中:方向未定义,保持上一帧朝向
	system.Update(utils.InputSnapshot{MouseX: 640, MouseY: 360})

	weapon, _ := ecs.GetComponent[*components.WeaponComponent](em, id)
	if weapon.DirX != 1 || weapon.DirY != 0 {
		t.Errorf("Expected aim kept at (1, 0), got (%f, %f)", weapon.DirX, weapon.DirY)
	}
}

func TestWeaponModeSwapsImage(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewWeaponSystem(em)

	createTestPlayer(em, 1000, 1000)
	id := createTestWeapon(em)

	gunImage := ebiten.NewImage(64, 64)
	swordImage := ebiten.NewImage(64, 64)
	weapon, _ := ecs.GetComponent[*components.WeaponComponent](em, id)
	weapon.GunImage = gunImage
	weapon.SwordImage = swordImage

	system.Update(utils.InputSnapshot{MouseX: 1040, MouseY: 360})

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Image != gunImage {
		t.Error("Gun mode should draw the gun image")
	}

	SwitchWeaponMode(weapon)
	system.Update(utils.InputSnapshot{MouseX: 1040, MouseY: 360})

	if sprite.Image != swordImage {
		t.Error("Sword mode should draw the sword image")
	}
}

func TestSwitchWeaponMode(t *testing.T) {
	weapon := &components.WeaponComponent{Mode: components.WeaponGun}

	if mode := SwitchWeaponMode(weapon); mode != components.WeaponSword {
		t.Errorf("Expected switch to sword, got %v", mode)
	}
	if mode := SwitchWeaponMode(weapon); mode != components.WeaponGun {
		t.Errorf("Expected switch back to gun, got %v", mode)
	}
	if weapon.Switches != 2 {
		t.Errorf("Expected 2 switches recorded, got %d", weapon.Switches)
	}
}
