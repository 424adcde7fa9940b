package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"islandfarm/internal/domain/farm"
)

const prompt = "farm> "

// Shell plays one game on a simulated clock: time only passes on wait.
type Shell struct {
	game   *farm.Game
	parser *Parser
	out    io.Writer
	now    time.Time
}

func NewShell(game *farm.Game, out io.Writer) *Shell {
	return &Shell{game: game, parser: NewParser(), out: out, now: game.AdvancedAt}
}

// Run reads commands from in until quit or end of input.
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	s.printf("Island farm. Type help for commands.\n%s", prompt)
	for scanner.Scan() {
		if quit := s.Exec(scanner.Text()); quit {
			return nil
		}
		s.printf("%s", prompt)
	}
	return scanner.Err()
}

// Exec runs one line and reports whether the shell should stop.
func (s *Shell) Exec(line string) bool {
	cmd, err := s.parser.Parse(line)
	if err != nil {
		if !errors.Is(err, ErrEmpty) {
			s.printf("%v\n", err)
		}
		return false
	}
	if cmd.Confidence < 0.9 {
		s.printf("(taking that as %s)\n", cmd.Verb)
	}

	switch cmd.Kind {
	case KindTool:
		s.useTool(cmd)
	case KindMove:
		s.move(cmd)
	case KindWait:
		s.wait(cmd.Wait)
	case KindLook:
		snap := s.game.Snapshot()
		_ = RenderMap(s.out, s.game.Grid(), snap)
		_ = RenderPlots(s.out, snap)
	case KindInventory:
		_ = RenderInventory(s.out, s.game.Snapshot())
	case KindHelp:
		s.help()
	case KindQuit:
		s.printf("bye\n")
		return true
	}
	return false
}

func (s *Shell) useTool(cmd Command) {
	out := s.game.Act(cmd.Tool, cmd.Target)
	switch {
	case out.Changed:
		s.printf("%s (%d,%d): done, facing %s\n", cmd.Tool, cmd.Target.X, cmd.Target.Y, out.Facing)
	case out.Reason != farm.ReasonNone:
		s.printf("%s (%d,%d): %s\n", cmd.Tool, cmd.Target.X, cmd.Target.Y, out.Reason)
	default:
		s.printf("%s (%d,%d): nothing happened\n", cmd.Tool, cmd.Target.X, cmd.Target.Y)
	}
}

func (s *Shell) move(cmd Command) {
	if s.game.Player().Posing() {
		s.printf("still swinging the %s; wait a moment\n", s.game.Player().PoseTool)
		return
	}
	taken := 0
	for taken < cmd.Steps && s.game.Move(cmd.Direction) {
		taken++
	}
	cell := s.game.Snapshot().Player.Cell
	s.printf("moved %s %d/%d, now at (%d,%d)\n", cmd.Direction, taken, cmd.Steps, cell.X, cell.Y)
}

// wait feeds the game in slices so long waits are not cut short by the
// catch-up cap.
func (s *Shell) wait(d time.Duration) {
	var advances []farm.Advance
	for remaining := d; remaining > 0; {
		slice := min(remaining, time.Second)
		remaining -= slice
		s.now = s.now.Add(slice)
		advances = append(advances, s.game.AdvanceTo(s.now)...)
	}
	for _, a := range advances {
		s.printf("(%d,%d) %s -> %s\n", a.Cell.X, a.Cell.Y, a.From, a.To)
	}
	s.printf("waited %dms\n", d.Milliseconds())
}

func (s *Shell) help() {
	for _, c := range s.parser.Registry().Commands() {
		s.printf("  %-16s %v\n", c.Usage, c.Aliases)
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
