package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按场景名创建场景实例，场景层通过它请求跳转而不必依赖具体场景类型
type SceneFactory func(name string) Scene

// SceneManager manages the game's high-level state by controlling which scene
// is active. It ensures only one scene's Update and Draw methods are called
// at any given time.
type SceneManager struct {
	currentScene  Scene
	sceneFactory  SceneFactory
	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Switch to set the
// initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
		sceneFactory: nil,
	}
}

// RequestQuit 请求退出游戏
// 场景层（如主菜单的 Exit 按钮）调用后，应用层会在下一帧结束游戏循环
func (sm *SceneManager) RequestQuit() {
	sm.quitRequested = true
	log.Printf("[SceneManager] 收到退出请求")
}

// QuitRequested 返回是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game
// loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Switch 通过场景名切换到新建的场景实例
// 游戏场景每次都重新创建，保证重开一局时状态干净
func (sm *SceneManager) Switch(name string) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return
	}

	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 切换到场景: %s", name)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
