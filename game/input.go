package game

import "log/slog"

// handleCommands applies host control requests in order.
func (g *Game) handleCommands(cmds []Command) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case CmdTogglePause:
			g.TogglePause()
		case CmdReseed:
			g.Reseed()
		case CmdFaster:
			g.SetSpeed(g.stepsPerUpdate + 1)
		case CmdSlower:
			g.SetSpeed(g.stepsPerUpdate - 1)
		case CmdSetSpeed:
			g.SetSpeed(cmd.Value)
		default:
			slog.Warn("unknown command", "kind", cmd.Kind)
		}
	}
}
