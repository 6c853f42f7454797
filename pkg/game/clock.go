package game

// Clock 游戏时钟，以秒为单位累计已流逝的游戏时间
//
// 所有冷却、时间戳和动画计时统一从这里取值：
// 场景每帧推进一次固定步长，暂停时不推进，全部计时随之冻结。
// 测试中可以按需推进任意时长来精确命中时间窗口。
type Clock struct {
	now float64
}

// NewClock 创建从零时刻开始的时钟
func NewClock() *Clock {
	return &Clock{}
}

// Advance 将时钟推进 dt 秒
func (c *Clock) Advance(dt float64) {
	c.now += dt
}

// Now 返回当前游戏时刻（秒）
func (c *Clock) Now() float64 {
	return c.now
}

// Since 返回自时刻 t 以来经过的秒数
func (c *Clock) Since(t float64) float64 {
	return c.now - t
}
