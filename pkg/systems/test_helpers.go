package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/entities"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// soundRecorder 记录播放请求的 SoundSink 替身
// 这是一个测试辅助类型,被多个测试文件共享使用
type soundRecorder struct {
	played []game.SoundID
}

func (r *soundRecorder) PlaySound(id game.SoundID) bool {
	r.played = append(r.played, id)
	return true
}

// count 返回指定音效被请求播放的次数
func (r *soundRecorder) count(id game.SoundID) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// stubLoader 实现 entities.ResourceLoader，所有贴图在内存中生成
type stubLoader struct{}

func (stubLoader) LoadSprite(path string, fallbackW, fallbackH int, fallback color.Color) (*ebiten.Image, *utils.Mask) {
	img := ebiten.NewImage(fallbackW, fallbackH)
	img.Fill(fallback)
	return img, utils.NewFilledMask(fallbackW, fallbackH)
}

func (stubLoader) LoadFrameDir(dir string, fallbackW, fallbackH int, fallback color.Color) ([]*ebiten.Image, []*utils.Mask) {
	frames := make([]*ebiten.Image, 2)
	masks := make([]*utils.Mask, 2)
	for i := range frames {
		frames[i] = ebiten.NewImage(fallbackW, fallbackH)
		frames[i].Fill(fallback)
		masks[i] = utils.NewFilledMask(fallbackW, fallbackH)
	}
	return frames, masks
}

func (stubLoader) SilhouetteImage(mask *utils.Mask) *ebiten.Image {
	return ebiten.NewImageFromImage(mask.Silhouette())
}

var _ entities.ResourceLoader = stubLoader{}

// createTestPlayer 创建带全套组件的测试玩家
// 碰撞掩码用全不透明位图,掩码碰撞退化为矩形碰撞
func createTestPlayer(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	mask := utils.NewFilledMask(128, 128)
	id := em.CreateEntity()
	em.AddComponent(id, &components.PlayerComponent{
		Speed:                500,
		Health:               60,
		MaxHealth:            60,
		WalkFrameRate:        5,
		InvulnerableDuration: 1.5,
		BlinkInterval:        0.2,
		BlinkVisible:         true,
		Masks: [4][]*utils.Mask{
			{mask}, {mask}, {mask}, {mask},
		},
	})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteComponent{Width: 128, Height: 128, Alpha: 1})
	em.AddComponent(id, &components.HitboxComponent{InsetX: -60, InsetY: -90})
	return id
}

// createTestEnemy 创建带全套组件的测试敌人
func createTestEnemy(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.EnemyComponent{
		Kind:        "bat",
		Speed:       200,
		FrameRate:   6,
		HitDuration: 0.2,
		DeathDelay:  0.2,
		Masks:       []*utils.Mask{utils.NewFilledMask(64, 64)},
	})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteComponent{Width: 64, Height: 64, Alpha: 1})
	em.AddComponent(id, &components.HitboxComponent{InsetX: -20, InsetY: -40})
	return id
}

// createTestObstacle 创建以 (cx, cy) 为中心的静态障碍物
func createTestObstacle(em *ecs.EntityManager, cx, cy, w, h float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ObstacleComponent{})
	em.AddComponent(id, &components.PositionComponent{X: cx, Y: cy})
	em.AddComponent(id, &components.SpriteComponent{Width: w, Height: h})
	return id
}

// createTestProjectile 创建测试弹道
func createTestProjectile(em *ecs.EntityManager, x, y, dirX, dirY float64, kind components.ProjectileKind) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ProjectileComponent{
		Kind:  kind,
		DirX:  dirX,
		DirY:  dirY,
		Speed: 1200,
		Mask:  utils.NewFilledMask(16, 16),
	})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteComponent{Width: 16, Height: 16, Alpha: 1})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 1.0})
	return id
}
