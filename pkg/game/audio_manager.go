package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundID 标识一种游戏音效
type SoundID string

const (
	SoundShoot     SoundID = "shoot"      // 开枪
	SoundImpact    SoundID = "impact"     // 子弹命中
	SoundBlood     SoundID = "blood"      // 挥砍命中
	SoundHurt      SoundID = "hurt"       // 玩家受伤
	SoundGameOver  SoundID = "game_over"  // 游戏结束
	SoundSlash     SoundID = "slash"      // 挥砍
	SoundHeal      SoundID = "heal"       // 治疗技能
	SoundGunBurst  SoundID = "gun_burst"  // 枪械连射技能
	SoundSwordNova SoundID = "sword_nova" // 剑刃环绕技能
	SoundDrawSword SoundID = "draw_sword" // 切换到剑
	SoundDrawGun   SoundID = "draw_gun"   // 切换到枪
)

// soundDef 音效文件及其基准音量
// 基准音量沿用素材本身的响度配平，最终音量再乘以设置中的音效音量
type soundDef struct {
	path   string
	volume float64
}

var soundTable = map[SoundID]soundDef{
	SoundShoot:     {"assets/audio/fireball.mp3", 0.2},
	SoundImpact:    {"assets/audio/impact.mp3", 1.0},
	SoundBlood:     {"assets/audio/blood.mp3", 0.05},
	SoundHurt:      {"assets/audio/hurt.mp3", 0.2},
	SoundGameOver:  {"assets/audio/game_over.mp3", 0.2},
	SoundSlash:     {"assets/audio/slash.mp3", 0.2},
	SoundHeal:      {"assets/audio/health_heal.mp3", 0.5},
	SoundGunBurst:  {"assets/audio/fireball_use_skill.mp3", 0.2},
	SoundSwordNova: {"assets/audio/slash_use_skill.mp3", 0.2},
	SoundDrawSword: {"assets/audio/draw_sword.mp3", 0.2},
	SoundDrawGun:   {"assets/audio/fire_use_skill.mp3", 0.2},
}

// 背景音乐及其基准音量
const (
	musicPath   = "assets/audio/music.mp3"
	musicVolume = 0.2
)

// SoundSink 接收游戏逻辑产生的音效请求
// 逻辑系统只依赖这个接口，测试中用记录桩替代真实播放
type SoundSink interface {
	PlaySound(id SoundID) bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置，叠加每个音效的基准音量）
//   - 音频文件缺失时静默降级，游戏照常运行
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil（降级模式，使用默认音量）
	soundPlayers    map[SoundID]*audio.Player
	failedSounds    map[SoundID]bool // 加载失败过的音效，只告警一次
	music           *audio.Player
	musicFailed     bool
}

// NewAudioManager 创建新的音频管理器
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[SoundID]*audio.Player),
		failedSounds:    make(map[SoundID]bool),
	}
}

// PlaySound 播放音效
// 音效使用基准音量乘以设置中的音效音量，单次播放后停止
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	def, exists := soundTable[id]
	if !exists {
		log.Printf("[AudioManager] Warning: Unknown sound: %s", id)
		return false
	}

	player := am.getSoundPlayer(id, def)
	if player == nil {
		return false
	}

	player.SetVolume(def.volume * am.getSoundVolume())

	// 重置并播放，同一音效重复触发时从头开始
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()

	return true
}

// PlayMusic 循环播放背景音乐
// 已在播放时不重新开始
func (am *AudioManager) PlayMusic() bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	if am.music != nil && am.music.IsPlaying() {
		return true
	}

	player := am.getMusicPlayer()
	if player == nil {
		return false
	}

	player.SetVolume(musicVolume * am.getMusicVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
	}
	player.Play()

	am.music = player
	return true
}

// StopMusic 停止背景音乐
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
		am.music = nil
	}
}

// PauseMusic 暂停背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// ResumeMusic 恢复背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.music == nil {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return
	}
	am.music.Play()
}

// SetMusicVolume 设置音乐音量并立即应用到当前播放的背景音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.music != nil {
		am.music.SetVolume(musicVolume * am.getMusicVolume())
	}
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// GetMusicVolume 获取当前音乐音量设置
func (am *AudioManager) GetMusicVolume() float64 {
	return am.getMusicVolume()
}

// GetSoundVolume 获取当前音效音量设置
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// PreloadSounds 预加载全部音效，避免战斗中首次播放的延迟
func (am *AudioManager) PreloadSounds() {
	loaded := 0
	for id, def := range soundTable {
		if am.getSoundPlayer(id, def) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundTable))
}

// getSoundPlayer 获取或加载音效播放器，失败时返回 nil 并只告警一次
func (am *AudioManager) getSoundPlayer(id SoundID, def soundDef) *audio.Player {
	if player, exists := am.soundPlayers[id]; exists {
		return player
	}
	if am.failedSounds[id] {
		return nil
	}

	player, err := am.resourceManager.LoadSoundEffect(def.path)
	if err != nil {
		am.failedSounds[id] = true
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", id, err)
		return nil
	}

	am.soundPlayers[id] = player
	return player
}

// getMusicPlayer 获取或加载背景音乐播放器
func (am *AudioManager) getMusicPlayer() *audio.Player {
	if am.music != nil {
		return am.music
	}
	if am.musicFailed {
		return nil
	}

	player, err := am.resourceManager.LoadAudio(musicPath)
	if err != nil {
		am.musicFailed = true
		log.Printf("[AudioManager] Warning: Failed to load music: %v", err)
		return nil
	}
	return player
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7 // 默认值
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
