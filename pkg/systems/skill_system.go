package systems

import (
	"github.com/gonewx/survivors/pkg/components"
	"github.com/gonewx/survivors/pkg/config"
	"github.com/gonewx/survivors/pkg/ecs"
	"github.com/gonewx/survivors/pkg/entities"
	"github.com/gonewx/survivors/pkg/game"
	"github.com/gonewx/survivors/pkg/utils"
)

// SkillSystem 处理技能按键和按住鼠标的持续开火
//
// 技能槽的通用规则：就绪检查通过后时间戳无条件刷新，
// 即使效果因为其他前置条件（如爆发窗口已开启）没有生效。
// 开火在武器瞄准更新之前处理，弹道沿用上一帧的瞄准方向。
type SkillSystem struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
	sounds        game.SoundSink
	resources     entities.ResourceLoader
	config        *config.SkillsConfig
}

// NewSkillSystem 创建技能系统，所有依赖不可为 nil
func NewSkillSystem(em *ecs.EntityManager, clock *game.Clock, sounds game.SoundSink,
	resources entities.ResourceLoader, cfg *config.SkillsConfig) *SkillSystem {
	return &SkillSystem{
		entityManager: em,
		clock:         clock,
		sounds:        sounds,
		resources:     resources,
		config:        cfg,
	}
}

// NewSkillsComponent 构造开局即全部可用的技能状态
// 所有时间戳回拨一个完整冷却周期
func NewSkillsComponent(cfg *config.SkillsConfig, now float64) *components.SkillsComponent {
	return &components.SkillsComponent{
		HealLastUsed:       now - cfg.HealCooldown,
		SwitchLastUsed:     now - cfg.SwitchCooldown,
		GunBurstLastUsed:   now - cfg.BurstCooldown,
		SwordBurstLastUsed: now - cfg.BurstCooldown,
		LastShotTime:       now - cfg.GunCooldown,
		LastBurstShotTime:  now - cfg.BurstShotSpacing,
		LastSlashTime:      now - cfg.SlashCooldown,
		LastClickTime:      now - cfg.ClickSpacing,
	}
}

// Update 处理本帧的技能按键与开火输入
func (s *SkillSystem) Update(input utils.InputSnapshot) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	weapons := ecs.GetEntitiesWith2[*components.WeaponComponent, *components.PositionComponent](s.entityManager)
	if len(weapons) == 0 {
		return
	}
	skills, ok := ecs.GetComponent[*components.SkillsComponent](s.entityManager, players[0])
	if !ok {
		return
	}

	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, players[0])
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])
	weapon, _ := ecs.GetComponent[*components.WeaponComponent](s.entityManager, weapons[0])
	weaponPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, weapons[0])

	now := s.clock.Now()

	if skills.BurstActive && now-skills.BurstActivatedAt >= s.config.BurstWindow {
		skills.BurstActive = false
	}

	for slot := 0; slot < 3; slot++ {
		if input.SkillJustPressed[slot] {
			s.handleSkillKey(slot, player, playerPos, weapon, weaponPos, skills, now)
		}
	}

	if input.MouseHeld {
		s.handleFire(playerPos, weapon, weaponPos, skills, now)
	}
}

// handleSkillKey 处理单个技能槽的按键
// 槽2（爆发）按当前武器模式分别计冷却
func (s *SkillSystem) handleSkillKey(slot int, player *components.PlayerComponent,
	playerPos *components.PositionComponent, weapon *components.WeaponComponent,
	weaponPos *components.PositionComponent, skills *components.SkillsComponent, now float64) {
	switch slot {
	case 0:
		if now-skills.HealLastUsed >= s.config.HealCooldown {
			s.useHeal(player)
			skills.HealLastUsed = now
		}
	case 1:
		if weapon.Mode == components.WeaponGun && now-skills.GunBurstLastUsed >= s.config.BurstCooldown {
			s.useGunBurst(skills, weapon, weaponPos, now)
			skills.GunBurstLastUsed = now
		} else if weapon.Mode == components.WeaponSword && now-skills.SwordBurstLastUsed >= s.config.BurstCooldown {
			s.useSwordNova(playerPos)
			skills.SwordBurstLastUsed = now
		}
	case 2:
		if now-skills.SwitchLastUsed >= s.config.SwitchCooldown {
			s.useSwitch(weapon)
			skills.SwitchLastUsed = now
		}
	}
}

// useHeal 回复生命，超出上限截断
// 音效在满血时同样播放
func (s *SkillSystem) useHeal(player *components.PlayerComponent) {
	s.sounds.PlaySound(game.SoundHeal)
	player.Health += s.config.HealAmount
	if player.Health > player.MaxHealth {
		player.Health = player.MaxHealth
	}
}

// useGunBurst 开启爆发窗口并立即打出一轮扇形弹幕
// 窗口已开启时整个效果落空（冷却时间戳仍由调用方刷新）；
// 立即弹幕不占用射击冷却
func (s *SkillSystem) useGunBurst(skills *components.SkillsComponent,
	weapon *components.WeaponComponent, weaponPos *components.PositionComponent, now float64) {
	if skills.BurstActive {
		return
	}
	s.sounds.PlaySound(game.SoundGunBurst)
	skills.BurstActive = true
	skills.BurstActivatedAt = now
	s.fireFan(weapon, weaponPos)
}

// useSwordNova 以玩家为中心向四周均匀打出环形斩击
// 方向是绝对方向，与当前瞄准无关
func (s *SkillSystem) useSwordNova(playerPos *components.PositionComponent) {
	s.sounds.PlaySound(game.SoundSwordNova)

	stats := config.ProjectileStats{
		Speed:    s.config.NovaSpeed,
		Lifetime: s.config.NovaLifetime,
	}
	step := 360.0 / float64(s.config.NovaCount)
	for i := 0; i < s.config.NovaCount; i++ {
		dirX, dirY := utils.Rotate(1, 0, float64(i)*step)
		entities.NewSlashEntity(s.entityManager, s.resources, stats,
			playerPos.X+dirX*s.config.NovaDistance,
			playerPos.Y+dirY*s.config.NovaDistance,
			dirX, dirY)
	}
}

// useSwitch 切换武器模式，音效按切换次数交替
func (s *SkillSystem) useSwitch(weapon *components.WeaponComponent) {
	SwitchWeaponMode(weapon)
	if weapon.Switches%2 == 1 {
		s.sounds.PlaySound(game.SoundDrawSword)
	} else {
		s.sounds.PlaySound(game.SoundDrawGun)
	}
}

// handleFire 按住鼠标时的持续开火
func (s *SkillSystem) handleFire(playerPos *components.PositionComponent,
	weapon *components.WeaponComponent, weaponPos *components.PositionComponent,
	skills *components.SkillsComponent, now float64) {
	switch {
	case weapon.Mode == components.WeaponSword:
		// 按住鼠标按 ClickSpacing 采样为一次次点击，采样本身无条件刷新
		if now-skills.LastClickTime >= s.config.ClickSpacing {
			skills.LastClickTime = now
			s.performSlash(playerPos, weapon, skills, now)
		}
	case skills.BurstActive:
		s.fireBurstFan(weapon, weaponPos, skills, now)
	default:
		s.fireSingle(weapon, weaponPos, skills, now)
	}
}

// performSlash 挥砍，还要再过挥砍自身的冷却
func (s *SkillSystem) performSlash(playerPos *components.PositionComponent,
	weapon *components.WeaponComponent, skills *components.SkillsComponent, now float64) {
	if now-skills.LastSlashTime < s.config.SlashCooldown {
		return
	}
	entities.NewSlashEntity(s.entityManager, s.resources, s.config.Slash,
		playerPos.X+weapon.DirX*s.config.Slash.SpawnOffset,
		playerPos.Y+weapon.DirY*s.config.Slash.SpawnOffset,
		weapon.DirX, weapon.DirY)
	skills.LastSlashTime = now
	s.sounds.PlaySound(game.SoundSlash)
}

// fireSingle 普通单发射击
func (s *SkillSystem) fireSingle(weapon *components.WeaponComponent,
	weaponPos *components.PositionComponent, skills *components.SkillsComponent, now float64) {
	if now-skills.LastShotTime < s.config.GunCooldown {
		return
	}
	s.sounds.PlaySound(game.SoundShoot)
	s.spawnBullet(weaponPos, weapon.DirX, weapon.DirY)
	skills.LastShotTime = now
}

// fireBurstFan 爆发窗口内的扇形连射
// 同时受射击冷却和连射间隔约束，打出后两个时间戳都刷新
func (s *SkillSystem) fireBurstFan(weapon *components.WeaponComponent,
	weaponPos *components.PositionComponent, skills *components.SkillsComponent, now float64) {
	if now-skills.LastShotTime < s.config.GunCooldown {
		return
	}
	if now-skills.LastBurstShotTime < s.config.BurstShotSpacing {
		return
	}
	s.sounds.PlaySound(game.SoundShoot)
	s.fireFan(weapon, weaponPos)
	skills.LastShotTime = now
	skills.LastBurstShotTime = now
}

// fireFan 沿当前瞄准方向打出一轮扇形弹幕
// 每颗子弹沿自己旋转后的方向偏移出生点
func (s *SkillSystem) fireFan(weapon *components.WeaponComponent, weaponPos *components.PositionComponent) {
	for _, angle := range s.config.FanAngles {
		dirX, dirY := utils.Rotate(weapon.DirX, weapon.DirY, angle)
		s.spawnBullet(weaponPos, dirX, dirY)
	}
}

func (s *SkillSystem) spawnBullet(weaponPos *components.PositionComponent, dirX, dirY float64) {
	entities.NewBulletEntity(s.entityManager, s.resources, s.config.Bullet,
		weaponPos.X+dirX*s.config.Bullet.SpawnOffset,
		weaponPos.Y+dirY*s.config.Bullet.SpawnOffset,
		dirX, dirY)
}

// SlotRemaining 返回技能槽的剩余冷却秒数，可用时为 0
// 槽1（爆发）按当前武器模式取对应的计时
func SlotRemaining(skills *components.SkillsComponent, weapon *components.WeaponComponent,
	cfg *config.SkillsConfig, slot int, now float64) float64 {
	var lastUsed float64
	switch slot {
	case 0:
		lastUsed = skills.HealLastUsed
	case 1:
		if weapon.Mode == components.WeaponSword {
			lastUsed = skills.SwordBurstLastUsed
		} else {
			lastUsed = skills.GunBurstLastUsed
		}
	case 2:
		lastUsed = skills.SwitchLastUsed
	default:
		return 0
	}

	remaining := cfg.SlotCooldown(slot) - (now - lastUsed)
	if remaining < 0 {
		return 0
	}
	return remaining
}
