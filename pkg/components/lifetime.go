package components

// LifetimeComponent 管理实体的存活时长
// 弹道（子弹、挥砍）超时后由 LifetimeSystem 标记销毁，
// 与是否命中无关
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大存活时长(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
