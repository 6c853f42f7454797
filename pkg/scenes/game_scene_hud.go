package scenes

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/systems"
)

// 血条：左上角，灰底红条，文字直接叠在条上
const (
	healthBarX = 10.0
	healthBarY = 50.0
	healthBarW = 200.0
	healthBarH = 20.0
)

// 技能栏：三个图标横向排在屏幕底部中央
const (
	skillIconSize = 60
	skillIconStep = 70.0
	skillDimAlpha = 128.0 / 255.0
)

var (
	healthBarBack = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	healthBarFill = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// drawHUD 屏幕坐标系的战斗界面：得分、血条、技能栏
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	s.drawScore(screen)
	s.drawHealthBar(screen)
	s.drawSkillBar(screen)
}

func (s *GameScene) drawScore(screen *ebiten.Image) {
	scoreText := fmt.Sprintf("Score: %d", game.GetGameState().GetScore())
	drawTextTopLeft(screen, scoreText, s.hudFont, 10, 10, color.Black)
}

func (s *GameScene) drawHealthBar(screen *ebiten.Image) {
	player := s.playerComponent()
	if player == nil {
		return
	}

	ebitenutil.DrawRect(screen, healthBarX, healthBarY, healthBarW, healthBarH, healthBarBack)

	fill := float64(player.Health) / float64(player.MaxHealth) * healthBarW
	if fill > 0 {
		ebitenutil.DrawRect(screen, healthBarX, healthBarY, fill, healthBarH, healthBarFill)
	}

	healthText := fmt.Sprintf("%d/%d", player.Health, player.MaxHealth)
	drawTextTopLeft(screen, healthText, s.hudFont, healthBarX, healthBarY, color.Black)
}

// drawSkillBar 三个技能槽：图标、冷却剩余秒数、槽位编号、白色描边
// 冷却中的图标半透明，剩余时间向下取整到秒显示在图标中央
func (s *GameScene) drawSkillBar(screen *ebiten.Image) {
	skills, weapon := s.skillsAndWeapon()
	if skills == nil || weapon == nil {
		return
	}

	now := s.clock.Now()
	icons := s.slotIcons(weapon.Mode)

	for slot := 0; slot < 3; slot++ {
		x := float64(WindowWidth)/2 + float64(slot-1)*skillIconStep
		y := float64(WindowHeight) - 60

		remaining := systems.SlotRemaining(skills, weapon, s.skillsConfig, slot, now)

		icon := icons[slot]
		bounds := icon.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(skillIconSize/float64(bounds.Dx()), skillIconSize/float64(bounds.Dy()))
		op.GeoM.Translate(x, y)
		if remaining > 0 {
			op.ColorScale.ScaleAlpha(skillDimAlpha)
		}
		screen.DrawImage(icon, op)

		if remaining > 0 {
			drawTextCentered(screen, strconv.Itoa(int(remaining)), s.skillFont,
				x+skillIconSize/2, y+skillIconSize/2, color.White)
		}

		drawTextTopLeft(screen, strconv.Itoa(slot+1), s.skillFont, x, y, color.White)
		drawRectBorder(screen, x, y, skillIconSize, skillIconSize, 2, color.White)
	}
}

// slotIcons 当前武器模式下的图标组：治疗图标固定，槽2/3随模式切换
func (s *GameScene) slotIcons(mode components.WeaponMode) [3]*ebiten.Image {
	if mode == components.WeaponSword {
		return [3]*ebiten.Image{s.healIcon, s.swordBurstIcon, s.swordSwitchIcon}
	}
	return [3]*ebiten.Image{s.healIcon, s.gunBurstIcon, s.gunSwitchIcon}
}

func (s *GameScene) playerComponent() *components.PlayerComponent {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	if len(players) == 0 {
		return nil
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, players[0])
	return player
}

func (s *GameScene) skillsAndWeapon() (*components.SkillsComponent, *components.WeaponComponent) {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	if len(players) == 0 {
		return nil, nil
	}
	skills, ok := ecs.GetComponent[*components.SkillsComponent](s.entityManager, players[0])
	if !ok {
		return nil, nil
	}

	weapons := ecs.GetEntitiesWith1[*components.WeaponComponent](s.entityManager)
	if len(weapons) == 0 {
		return nil, nil
	}
	weapon, _ := ecs.GetComponent[*components.WeaponComponent](s.entityManager, weapons[0])
	return skills, weapon
}
