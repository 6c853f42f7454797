package entities

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
)

// groundFallback 地面瓦片缺失时的占位色（草地绿）
var groundFallback = color.RGBA{R: 58, G: 121, B: 66, A: 255}

// BuildWorld 根据世界配置创建地面和全部静态障碍物
// 玩家、武器、敌人不在此创建，由各自的工厂负责
func BuildWorld(em *ecs.EntityManager, rm ResourceLoader, cfg *config.WorldConfig) {
	newGroundEntity(em, rm, cfg)
	for _, def := range cfg.Obstacles {
		newObstacleEntity(em, rm, def)
	}
}

// newGroundEntity 创建地面实体
// 整张地面在创建时平铺成一张大图，运行期只需一次绘制调用
func newGroundEntity(em *ecs.EntityManager, rm ResourceLoader, cfg *config.WorldConfig) ecs.EntityID {
	tile, _ := rm.LoadSprite(
		fmt.Sprintf("assets/images/ground/%s.png", cfg.GroundTile),
		config.TileSize, config.TileSize, groundFallback,
	)

	width, height := cfg.PixelSize()
	ground := ebiten.NewImage(int(width), int(height))
	for ty := 0; ty < cfg.HeightTiles; ty++ {
		for tx := 0; tx < cfg.WidthTiles; tx++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(tx*config.TileSize), float64(ty*config.TileSize))
			ground.DrawImage(tile, op)
		}
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: width / 2, Y: height / 2})
	em.AddComponent(id, &components.SpriteComponent{
		Image:  ground,
		Width:  width,
		Height: height,
		Layer:  components.LayerGround,
	})

	return id
}

// newObstacleEntity 创建单个静态障碍物
// 配置里的矩形以左上角定位，实体位置取矩形中心；
// Sprite 为空时是不可见的碰撞边界，Image 为 nil，渲染时跳过
func newObstacleEntity(em *ecs.EntityManager, rm ResourceLoader, def config.ObstacleDef) ecs.EntityID {
	var image *ebiten.Image
	if def.Sprite != "" {
		image, _ = rm.LoadSprite(
			fmt.Sprintf("assets/images/objects/%s.png", def.Sprite),
			int(def.Width), int(def.Height), color.White,
		)
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: def.X + def.Width/2,
		Y: def.Y + def.Height/2,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Image:  image,
		Width:  def.Width,
		Height: def.Height,
		Layer:  components.LayerObject,
	})
	em.AddComponent(id, &components.ObstacleComponent{})

	return id
}
