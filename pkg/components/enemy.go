package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/utils"
)

// EnemyComponent 敌人状态
//
// 受击（Hit）与死亡（Dying）是两条独立的状态线：
// 受击中的敌人短暂无敌、染色，但继续移动和追击；
// 死亡中的敌人停止移动和动画，以剪影形态停留 DeathDelay 后移除。
type EnemyComponent struct {
	Kind  string  // 种类名（bat/blob/skeleton）
	Speed float64 // 追击速度（像素/秒）

	DirX, DirY float64 // 本帧朝玩家的归一化方向，重合时为零向量

	Frames     []*ebiten.Image
	Masks      []*utils.Mask // 与 Frames 对齐的像素掩码
	FrameIndex float64
	FrameRate  float64 // 动画帧率（帧/秒）

	Hit         bool
	HitUntil    float64 // 受击窗口截止时刻（游戏时钟秒）
	HitDuration float64

	Dying      bool
	DeathAt    float64 // 第一次 Destroy 的时刻，后续调用不覆盖
	DeathDelay float64
	Silhouette *ebiten.Image // 死亡剪影（首帧不透明像素转白色）
}

// CurrentFrame 返回当前动画帧，帧列表为空时返回 nil
func (e *EnemyComponent) CurrentFrame() *ebiten.Image {
	if len(e.Frames) == 0 {
		return nil
	}
	return e.Frames[int(e.FrameIndex)%len(e.Frames)]
}

// CurrentMask 返回当前动画帧对应的像素掩码
func (e *EnemyComponent) CurrentMask() *utils.Mask {
	if len(e.Masks) == 0 {
		return nil
	}
	return e.Masks[int(e.FrameIndex)%len(e.Masks)]
}
