package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// guideText 指南内容，逐行在屏幕中线附近居中排布
var guideText = []string{
	"Welcome to Survivor!",
	"Use WASD or arrow keys to move.",
	"Use 1 2 3 for skill.",
	"Click to shoot or slash.",
	"Avoid enemies and try to survive as long as possible.",
	"Good luck!",
	"Press ESC to quit.",
}

// GuideScene 操作指南画面，Escape 返回主菜单
type GuideScene struct {
	sceneManager *game.SceneManager

	background *ebiten.Image
	guidebook  *ebiten.Image
	font       text.Face
}

// NewGuideScene 创建指南场景
func NewGuideScene(rm *game.ResourceManager, sm *game.SceneManager) *GuideScene {
	scene := &GuideScene{sceneManager: sm}

	scene.background, _ = rm.LoadSprite("assets/images/ui/guide.png",
		WindowWidth, WindowHeight, color.RGBA{R: 25, G: 25, B: 35, A: 255})
	scene.guidebook, _ = rm.LoadSprite("assets/images/ui/guidebook.png",
		96, 96, color.RGBA{R: 120, G: 90, B: 50, A: 255})
	scene.font = rm.LoadFont(uiFontPath, 36)

	return scene
}

// Update Escape 返回主菜单
func (g *GuideScene) Update(deltaTime float64) {
	// Esc 或任意点击/触摸返回主菜单
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || clicked {
		g.sceneManager.Switch(game.SceneMenu)
	}
}

// Draw 背景铺满全屏，左上角放指南书图标，说明文字居中逐行排布
func (g *GuideScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(g.background, &ebiten.DrawImageOptions{})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(10, 10)
	screen.DrawImage(g.guidebook, op)

	for i, line := range guideText {
		drawTextCentered(screen, line, g.font,
			float64(WindowWidth)/2, float64(WindowHeight)/2-100+float64(i)*40, color.White)
	}
}
