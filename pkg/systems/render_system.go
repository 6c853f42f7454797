package systems

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
)

// RenderSystem 按画家算法绘制世界实体
//
// 镜头锁定玩家：玩家固定出现在屏幕中心，其余实体按同一偏移平移。
// 地面层先于物体层绘制；两层内部都按中心 Y 升序排序，
// 靠下的实体盖住靠上的实体，形成简单的前后遮挡。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	drawOrder     []drawItem // 复用的排序缓冲,避免每帧分配
}

type drawItem struct {
	id ecs.EntityID
	y  float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		drawOrder:     make([]drawItem, 0, 64),
	}
}

// Draw 绘制全部世界实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	cameraX, cameraY := s.cameraOffset()

	entities := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)

	for _, layer := range []components.RenderLayer{components.LayerGround, components.LayerObject} {
		s.drawOrder = s.drawOrder[:0]
		for _, id := range entities {
			sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
			if !ok || sprite.Layer != layer || sprite.Image == nil {
				continue
			}
			pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			if !ok {
				continue
			}
			s.drawOrder = append(s.drawOrder, drawItem{id: id, y: pos.Y})
		}

		sort.SliceStable(s.drawOrder, func(i, j int) bool {
			return s.drawOrder[i].y < s.drawOrder[j].y
		})

		for _, item := range s.drawOrder {
			s.drawEntity(screen, item.id, cameraX, cameraY)
		}
	}
}

// cameraOffset 返回世界坐标到屏幕坐标的平移量
// 没有玩家时(如测试场景)镜头停在原点
func (s *RenderSystem) cameraOffset() (float64, float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return 0, 0
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])
	if !ok {
		return 0, 0
	}
	return float64(config.GameWindowWidth)/2 - pos.X, float64(config.GameWindowHeight)/2 - pos.Y
}

// drawEntity 绘制单个实体
// 变换顺序:平移到中心原点 → 旋转 → 垂直翻转 → 平移到屏幕位置
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, cameraX, cameraY float64) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	bounds := sprite.Image.Bounds()
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	if sprite.Rotation != 0 {
		// 素材坐标的正角是屏幕上的逆时针,GeoM 的正角是顺时针
		op.GeoM.Rotate(-sprite.Rotation * math.Pi / 180)
	}
	if sprite.FlipY {
		op.GeoM.Scale(1, -1)
	}
	op.GeoM.Translate(pos.X+cameraX, pos.Y+cameraY)

	if sprite.Alpha != 0 && sprite.Alpha != 1 {
		op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	}

	// 受击窗口内的敌人染红,死亡剪影不再染色
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok && enemy.Hit && !enemy.Dying {
		op.ColorScale.Scale(1, 0.3, 0.3, 1)
	}

	screen.DrawImage(sprite.Image, op)
}
