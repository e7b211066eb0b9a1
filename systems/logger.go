package systems

import (
	"github.com/automoto/coinhop/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// logger returns the run logger, or the package default before a game exists.
func logger(w donburi.World) *log.Logger {
	if e, ok := components.Game.First(w); ok {
		if l := components.Game.Get(e).Logger; l != nil {
			return l
		}
	}
	return log.Default()
}
