package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/entities"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/systems"
	"github.com/gonewx/survivors/pkg/utils"
)

// GameConfigs 开一局游戏需要的全部配置
// 由应用层启动时加载一次，每局复用
type GameConfigs struct {
	Gameplay   *config.GameplayConfig
	Skills     *config.SkillsConfig
	SpawnRules *config.SpawnRulesConfig
	World      *config.WorldConfig
}

// GameScene 一局游戏：持有实体管理器、游戏时钟和全部系统
//
// 每次开局都重新创建场景，世界和全局状态从零开始。
// Update 按固定顺序驱动系统管线，Draw 画世界再叠屏幕坐标的 HUD。
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	audioManager    *game.AudioManager

	entityManager *ecs.EntityManager
	clock         *game.Clock

	skillSystem      *systems.SkillSystem
	playerSystem     *systems.PlayerSystem
	weaponSystem     *systems.WeaponSystem
	enemySystem      *systems.EnemySystem
	projectileSystem *systems.ProjectileSystem
	lifetimeSystem   *systems.LifetimeSystem
	combatSystem     *systems.CombatSystem
	spawnSystem      *systems.SpawnSystem
	renderSystem     *systems.RenderSystem

	skillsConfig *config.SkillsConfig

	hudFont   text.Face
	skillFont text.Face

	healIcon        *ebiten.Image
	gunBurstIcon    *ebiten.Image
	gunSwitchIcon   *ebiten.Image
	swordBurstIcon  *ebiten.Image
	swordSwitchIcon *ebiten.Image
}

// nopSoundSink 丢弃所有音效请求，音频不可用时兜底
type nopSoundSink struct{}

func (nopSoundSink) PlaySound(game.SoundID) bool { return false }

// NewGameScene creates a fresh run: it resets the global game state, builds
// the world from config and wires every gameplay system to a new entity
// manager and clock.
//
// am may be nil (headless tests); sound playback degrades to a no-op.
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager, am *game.AudioManager, cfgs GameConfigs) *GameScene {
	game.GetGameState().Reset()

	em := ecs.NewEntityManager()
	clock := game.NewClock()

	var sounds game.SoundSink = nopSoundSink{}
	if am != nil {
		sounds = am
	}

	scene := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		audioManager:    am,
		entityManager:   em,
		clock:           clock,
		skillsConfig:    cfgs.Skills,
	}

	// 世界、玩家、武器；技能状态挂在玩家实体上
	entities.BuildWorld(em, rm, cfgs.World)
	playerID := entities.NewPlayerEntity(em, rm, cfgs.Gameplay.Player,
		cfgs.World.PlayerStart.X, cfgs.World.PlayerStart.Y)
	ecs.AddComponent(em, playerID, systems.NewSkillsComponent(cfgs.Skills, clock.Now()))
	entities.NewWeaponEntity(em, rm,
		cfgs.World.PlayerStart.X, cfgs.World.PlayerStart.Y, cfgs.Skills.WeaponDistance)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	scene.skillSystem = systems.NewSkillSystem(em, clock, sounds, rm, cfgs.Skills)
	scene.playerSystem = systems.NewPlayerSystem(em, clock)
	scene.weaponSystem = systems.NewWeaponSystem(em)
	scene.enemySystem = systems.NewEnemySystem(em, clock)
	scene.projectileSystem = systems.NewProjectileSystem(em)
	scene.lifetimeSystem = systems.NewLifetimeSystem(em)
	scene.combatSystem = systems.NewCombatSystem(em, clock, sounds, cfgs.Gameplay)
	scene.spawnSystem = systems.NewSpawnSystem(em, clock, rm, cfgs.SpawnRules, cfgs.World, rng)
	scene.renderSystem = systems.NewRenderSystem(em)

	scene.loadHUDResources(rm)

	// 战斗中音乐持续循环；从菜单进来时通常已在播放
	if am != nil {
		am.PlayMusic()
	}

	log.Printf("[GameScene] New run started at (%.0f, %.0f)",
		cfgs.World.PlayerStart.X, cfgs.World.PlayerStart.Y)
	return scene
}

// loadHUDResources 加载 HUD 字体和技能图标
func (s *GameScene) loadHUDResources(rm *game.ResourceManager) {
	s.hudFont = rm.LoadFont(uiFontPath, 36)
	s.skillFont = rm.LoadFont(uiFontPath, 24)

	iconFallback := color.RGBA{R: 70, G: 70, B: 80, A: 255}
	s.healIcon, _ = rm.LoadSprite("assets/images/skill/0.jpg", skillIconSize, skillIconSize, iconFallback)
	s.gunBurstIcon, _ = rm.LoadSprite("assets/images/skill/1.jpg", skillIconSize, skillIconSize, iconFallback)
	s.gunSwitchIcon, _ = rm.LoadSprite("assets/images/skill/2.jpg", skillIconSize, skillIconSize, iconFallback)
	s.swordBurstIcon, _ = rm.LoadSprite("assets/images/skill/4.jpg", skillIconSize, skillIconSize, iconFallback)
	s.swordSwitchIcon, _ = rm.LoadSprite("assets/images/skill/5.jpg", skillIconSize, skillIconSize, iconFallback)
}

// Update runs one fixed-step frame of the gameplay pipeline.
//
// 顺序即语义：技能开火用上一帧的瞄准方向；玩家先动、武器再贴上去；
// 战斗结算在所有移动之后；销毁清扫永远最后。
func (s *GameScene) Update(deltaTime float64) {
	input := utils.CaptureInput()
	s.clock.Advance(deltaTime)

	s.skillSystem.Update(input)
	s.playerSystem.Update(deltaTime, input)
	s.weaponSystem.Update(input)
	s.enemySystem.Update(deltaTime)
	s.projectileSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.combatSystem.Update()
	s.spawnSystem.Update()
	s.entityManager.RemoveMarkedEntities()

	if game.GetGameState().GameOver {
		s.finishRun()
	}
}

// finishRun 本局结束：停音乐并切到结算画面
// 结算音效由战斗结算在置位 GameOver 时播放
func (s *GameScene) finishRun() {
	log.Printf("[GameScene] Run over, final score %d", game.GetGameState().GetScore())
	if s.audioManager != nil {
		s.audioManager.StopMusic()
	}
	s.sceneManager.Switch(game.SceneGameOver)
}

// Draw renders the world through the camera, then the HUD in screen space.
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)
}
