package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionToggleFullscreen
	ActionRespawnCoins
	ActionCount // Must be last - used for array sizing
)

// InputConfig binds each action to key names as ebiten spells them ("A",
// "Space", "F3"). Any of the listed keys triggers the action.
type InputConfig struct {
	MoveLeft         []string `yaml:"moveleft"`
	MoveRight        []string `yaml:"moveright"`
	Jump             []string `yaml:"jump"`
	ToggleDebug      []string `yaml:"toggledebug"`
	ToggleFullscreen []string `yaml:"togglefullscreen"`
	RespawnCoins     []string `yaml:"respawncoins"`
}

// Keys returns the key names bound to id.
func (c InputConfig) Keys(id ActionID) []string {
	switch id {
	case ActionMoveLeft:
		return c.MoveLeft
	case ActionMoveRight:
		return c.MoveRight
	case ActionJump:
		return c.Jump
	case ActionToggleDebug:
		return c.ToggleDebug
	case ActionToggleFullscreen:
		return c.ToggleFullscreen
	case ActionRespawnCoins:
		return c.RespawnCoins
	}
	return nil
}

func defaultInput() InputConfig {
	return InputConfig{
		MoveLeft:         []string{"A"},
		MoveRight:        []string{"D"},
		Jump:             []string{"Space"},
		ToggleDebug:      []string{"F3"},
		ToggleFullscreen: []string{"F11"},
		RespawnCoins:     []string{"C"},
	}
}
