// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSnapshot 当前帧的游戏输入快照
// 场景层每帧采集一次，逻辑系统只读取快照，不直接访问输入设备
type InputSnapshot struct {
	// MoveX, MoveY 移动方向，每轴取值 -1/0/+1
	MoveX, MoveY float64
	// MouseX, MouseY 指针位置（屏幕坐标），触摸优先于鼠标
	MouseX, MouseY int
	// MouseHeld 指针是否处于按下状态（鼠标左键或触摸）
	MouseHeld bool
	// SkillJustPressed 技能键 1/2/3 是否在本帧刚刚按下
	SkillJustPressed [3]bool
}

// CaptureInput 采集当前帧的输入快照
// 移动同时支持 WASD 和方向键
func CaptureInput() InputSnapshot {
	snap := InputSnapshot{}

	snap.MoveX = moveAxis(
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
	)
	snap.MoveY = moveAxis(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
	)

	snap.MouseX, snap.MouseY = GetPointerPosition()
	snap.MouseHeld = IsPointerPressed()

	snap.SkillJustPressed[0] = inpututil.IsKeyJustPressed(ebiten.KeyDigit1)
	snap.SkillJustPressed[1] = inpututil.IsKeyJustPressed(ebiten.KeyDigit2)
	snap.SkillJustPressed[2] = inpututil.IsKeyJustPressed(ebiten.KeyDigit3)

	return snap
}

// moveAxis 将一对按键状态折算成单轴方向，两键同按时相抵为 0
func moveAxis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v -= 1
	}
	if pos {
		v += 1
	}
	return v
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	// 返回鼠标位置
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}

	// 检查鼠标
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
