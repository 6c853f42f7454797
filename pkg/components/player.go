package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/survivors/pkg/utils"
)

// Facing 玩家朝向（四方向动画行）
type Facing int

const (
	FacingDown Facing = iota
	FacingLeft
	FacingRight
	FacingUp
)

// PlayerComponent 玩家状态
//
// 动画帧按朝向分组；FrameIndex 是浮点累加器，取整后对帧数取模。
// 无敌窗口内 BlinkVisible 以 BlinkInterval 为周期翻转，
// 不可见相位以半透明绘制而不是完全隐藏。
type PlayerComponent struct {
	DirX, DirY float64 // 本帧归一化移动方向，无输入时为零向量
	Speed      float64 // 移动速度（像素/秒）

	Health    int
	MaxHealth int

	Facing        Facing
	Frames        [4][]*ebiten.Image // 按朝向分组的行走帧
	Masks         [4][]*utils.Mask   // 与 Frames 对齐的像素掩码
	FrameIndex    float64
	WalkFrameRate float64 // 行走动画帧率（帧/秒）

	Invulnerable         bool
	InvulnerableUntil    float64 // 无敌截止时刻（游戏时钟秒）
	InvulnerableDuration float64
	BlinkVisible         bool
	LastBlinkTime        float64
	BlinkInterval        float64
}

// CurrentFrame 返回当前朝向下的动画帧，帧列表为空时返回 nil
func (p *PlayerComponent) CurrentFrame() *ebiten.Image {
	frames := p.Frames[p.Facing]
	if len(frames) == 0 {
		return nil
	}
	return frames[int(p.FrameIndex)%len(frames)]
}

// CurrentMask 返回当前动画帧对应的像素掩码
func (p *PlayerComponent) CurrentMask() *utils.Mask {
	masks := p.Masks[p.Facing]
	if len(masks) == 0 {
		return nil
	}
	return masks[int(p.FrameIndex)%len(masks)]
}
