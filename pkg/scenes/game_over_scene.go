package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// GameOverScene 结算画面：显示最终得分，Escape 或点击返回主菜单
// 得分在构造时快照，之后全局状态怎么变都不影响显示
type GameOverScene struct {
	sceneManager *game.SceneManager

	background *ebiten.Image
	scoreFont  text.Face
	hintFont   text.Face
	finalScore int
}

// NewGameOverScene 创建结算场景并停掉背景音乐
func NewGameOverScene(rm *game.ResourceManager, sm *game.SceneManager, am *game.AudioManager) *GameOverScene {
	if am != nil {
		am.StopMusic()
	}

	scene := &GameOverScene{
		sceneManager: sm,
		finalScore:   game.GetGameState().GetScore(),
	}

	scene.background, _ = rm.LoadSprite("assets/images/ui/bg_over.jpg",
		WindowWidth, WindowHeight, color.RGBA{R: 30, G: 10, B: 10, A: 255})
	scene.scoreFont = rm.LoadFont(uiFontPath, 60)
	scene.hintFont = rm.LoadFont(uiFontPath, 39)

	return scene
}

// Update Escape 回到主菜单；下一局由菜单重新创建游戏场景
func (s *GameOverScene) Update(deltaTime float64) {
	// Esc 或任意点击/触摸返回主菜单
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || clicked {
		s.sceneManager.Switch(game.SceneMenu)
	}
}

// Draw 背景图 + 底部居中的最终得分和返回提示
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(s.background, &ebiten.DrawImageOptions{})

	scoreBottom := float64(WindowHeight) - 90
	drawTextMidBottom(screen, fmt.Sprintf("Final Score: %d", s.finalScore),
		s.scoreFont, float64(WindowWidth)/2, scoreBottom, color.White)
	drawTextMidTop(screen, "Press ESC to return to menu",
		s.hintFont, float64(WindowWidth)/2, scoreBottom+41, color.White)
}
