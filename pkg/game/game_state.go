package game

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	Score    int  // 当前得分
	GameOver bool // 玩家生命值归零后置位，由场景层切换到结算画面
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// AddScore 增加得分
func (gs *GameState) AddScore(points int) {
	gs.Score += points
}

// GetScore 返回当前得分
func (gs *GameState) GetScore() int {
	return gs.Score
}

// SetGameOver 标记本局结束
func (gs *GameState) SetGameOver() {
	gs.GameOver = true
}

// Reset 重置为新一局的初始状态
func (gs *GameState) Reset() {
	gs.Score = 0
	gs.GameOver = false
}
