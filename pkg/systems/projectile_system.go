package systems

import (
	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
)

// ProjectileSystem 推进弹道的直线飞行
// 弹道无视障碍物;超时移除由 LifetimeSystem 负责
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建弹道系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
	}
}

// Update 按速度推进所有弹道
func (s *ProjectileSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		pos.X += proj.DirX * proj.Speed * deltaTime
		pos.Y += proj.DirY * proj.Speed * deltaTime
	}
}
