package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

const menuTitle = "WARRIOR SURVIVORS"

// menuButtonGap 按钮纵向间距
const menuButtonGap = 20.0

// menuOptions 三个菜单项，顺序即按钮从上到下的顺序
var menuOptions = [3]string{"Start", "Guide", "Exit"}

// buttonRect 屏幕坐标下的按钮命中区域
type buttonRect struct {
	x, y, w, h float64
}

// MainMenuScene represents the main menu screen of the game.
// It displays when the game starts and allows the player to start a run,
// open the guide, or quit.
type MainMenuScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	audioManager    *game.AudioManager

	background  *ebiten.Image
	buttonImage *ebiten.Image
	titleFont   text.Face
	labelFont   text.Face

	buttonRects [3]buttonRect
	hovered     int // 鼠标悬停的按钮下标，无悬停为 -1
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
// It loads the menu background, the button image and the UI fonts; missing
// assets degrade to solid-color placeholders so the menu stays usable.
func NewMainMenuScene(rm *game.ResourceManager, sm *game.SceneManager, am *game.AudioManager) *MainMenuScene {
	scene := &MainMenuScene{
		resourceManager: rm,
		sceneManager:    sm,
		audioManager:    am,
		hovered:         -1,
	}

	scene.background, _ = rm.LoadSprite("assets/images/ui/bg.jpg",
		WindowWidth, WindowHeight, color.RGBA{R: 40, G: 70, B: 40, A: 255})
	scene.buttonImage, _ = rm.LoadSprite("assets/images/ui/button.png",
		260, 80, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	scene.titleFont = rm.LoadFont(uiFontPath, 80)
	scene.labelFont = rm.LoadFont(uiFontPath, 40)

	bounds := scene.buttonImage.Bounds()
	scene.buttonRects = menuButtonRects(float64(bounds.Dx()), float64(bounds.Dy()))

	return scene
}

// menuButtonRects 计算三个按钮的命中矩形
// 按钮横向居中，第一颗的顶边在屏幕垂直中线，向下依次排开
func menuButtonRects(buttonW, buttonH float64) [3]buttonRect {
	x := (float64(WindowWidth) - buttonW) / 2
	y := float64(WindowHeight) / 2

	var rects [3]buttonRect
	for i := range rects {
		rects[i] = buttonRect{x: x, y: y, w: buttonW, h: buttonH}
		y += buttonH + menuButtonGap
	}
	return rects
}

// Update updates the main menu scene logic.
// deltaTime is the time elapsed since the last update in seconds.
func (m *MainMenuScene) Update(deltaTime float64) {
	// 从结算画面回到菜单后背景音乐重新响起；已在播放时是空操作
	if m.audioManager != nil {
		m.audioManager.PlayMusic()
	}

	pointerX, pointerY := utils.GetPointerPosition()
	m.hovered = m.hitButton(float64(pointerX), float64(pointerY))

	if clicked, clickX, clickY := utils.IsJustTouchedOrClicked(); clicked {
		if hit := m.hitButton(float64(clickX), float64(clickY)); hit >= 0 {
			m.selectOption(hit)
		}
	}
}

// hitButton 返回命中的按钮下标，未命中返回 -1
func (m *MainMenuScene) hitButton(x, y float64) int {
	for i, r := range m.buttonRects {
		if isPointInRect(x, y, r.x, r.y, r.w, r.h) {
			return i
		}
	}
	return -1
}

// selectOption 执行菜单项：开始新的一局、打开指南或请求退出
func (m *MainMenuScene) selectOption(index int) {
	switch index {
	case 0:
		log.Printf("[MainMenuScene] Start clicked")
		m.sceneManager.Switch(game.SceneGame)
	case 1:
		log.Printf("[MainMenuScene] Guide clicked")
		m.sceneManager.Switch(game.SceneGuide)
	case 2:
		log.Printf("[MainMenuScene] Exit clicked")
		m.sceneManager.RequestQuit()
	}
}

// Draw renders the main menu: background, title and the three buttons.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(m.background, &ebiten.DrawImageOptions{})

	drawTextCentered(screen, menuTitle, m.titleFont,
		float64(WindowWidth)/2, float64(WindowHeight)/3, color.Black)

	for i, r := range m.buttonRects {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.x, r.y)
		if i == m.hovered {
			op.ColorScale.Scale(1.2, 1.2, 1.2, 1)
		}
		screen.DrawImage(m.buttonImage, op)

		drawTextCentered(screen, menuOptions[i], m.labelFont,
			r.x+r.w/2, r.y+r.h/2, color.White)
	}
}

// isPointInRect checks if a point (px, py) is inside a rectangle defined by (x, y, width, height).
// Returns true if the point is within the rectangle bounds (inclusive), false otherwise.
func isPointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px <= x+width && py >= y && py <= y+height
}
