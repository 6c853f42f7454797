package components

// ObstacleComponent 静态障碍物标记
// 拥有该组件的实体阻挡玩家和敌人的移动，自身永不移动
type ObstacleComponent struct{}
