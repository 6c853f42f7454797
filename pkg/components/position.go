package components

// PositionComponent 存储实体中心的世界坐标
// Y 轴向下，与屏幕坐标方向一致
type PositionComponent struct {
	X float64
	Y float64
}
