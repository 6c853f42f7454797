package components

// SkillsComponent 技能冷却与开火节奏状态
//
// 通用规则：now - lastUsed >= cooldown 时可用，使用后无条件
// lastUsed = now（即使效果因其他前置条件落空）。所有时间戳
// 都取自游戏时钟（秒）；初始值设为 -cooldown 使技能开局即可用。
//
// 技能2（爆发）的冷却按武器模式分开计时：切换模式不共享、
// 也不重置另一个模式的计时。
type SkillsComponent struct {
	HealLastUsed   float64 // 技能1（治疗）
	SwitchLastUsed float64 // 技能3（切换武器）

	GunBurstLastUsed   float64 // 技能2，枪模式
	SwordBurstLastUsed float64 // 技能2，剑模式

	BurstActive      bool    // 爆发窗口是否开启（仅枪模式）
	BurstActivatedAt float64 // 爆发窗口开启时刻

	LastShotTime      float64 // 最近一次枪械射击
	LastBurstShotTime float64 // 爆发窗口内最近一次连射
	LastSlashTime     float64 // 最近一次挥砍
	LastClickTime     float64 // 剑模式最近一次采样到的按住鼠标
}
