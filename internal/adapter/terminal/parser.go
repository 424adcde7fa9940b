// Package terminal is a line-oriented client for a single farm game. It
// forgives typos in command names the way a text adventure does.
package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"

	"github.com/agnivade/levenshtein"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindTool
	KindMove
	KindWait
	KindLook
	KindInventory
	KindHelp
	KindQuit
)

const (
	minConfidence = 0.5
	maxWait       = 10 * time.Minute
)

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrAmbiguous      = errors.New("ambiguous command")
	ErrBadArgs        = errors.New("bad arguments")
)

type Command struct {
	Kind      Kind
	Verb      string
	Tool      farm.Tool
	Target    world.Cell
	Direction world.Direction
	Steps     int
	Wait      time.Duration
	// Confidence is 1 for an exact name and lower for corrected spellings.
	Confidence float64
}

type Parser struct {
	registry *Registry
}

func NewParser() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) Registry() *Registry { return p.registry }

func (p *Parser) Parse(raw string) (Command, error) {
	if strings.TrimSpace(raw) == "?" {
		return Command{Kind: KindHelp, Verb: "help", Confidence: 1}, nil
	}
	tokens := tokenise(normalise(raw))
	if len(tokens) == 0 {
		return Command{}, ErrEmpty
	}

	best, alts := p.registry.match(tokens[0])
	if best.Canonical == "" || best.Score < minConfidence {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, tokens[0])
	}
	if len(alts) > 0 && best.Score-alts[0].Score < 0.05 && alts[0].Score > 0.65 {
		return Command{}, fmt.Errorf("%w: %q could be %s or %s", ErrAmbiguous, tokens[0], best.Canonical, alts[0].Canonical)
	}

	def, _ := p.registry.Command(best.Canonical)
	args := tokens[1:]
	if len(args) < def.MinArgs || len(args) > def.MaxArgs {
		return Command{}, fmt.Errorf("%w: usage %s", ErrBadArgs, def.Usage)
	}

	cmd := Command{Kind: def.Kind, Verb: def.Canonical, Confidence: best.Score}
	switch def.Kind {
	case KindTool:
		tool, _ := farm.ParseTool(def.Canonical)
		x, errX := strconv.Atoi(args[0])
		y, errY := strconv.Atoi(args[1])
		if errX != nil || errY != nil {
			return Command{}, fmt.Errorf("%w: usage %s", ErrBadArgs, def.Usage)
		}
		cmd.Tool = tool
		cmd.Target = world.Cell{X: x, Y: y}
	case KindMove:
		dir, ok := parseDirection(args[0])
		if !ok {
			return Command{}, fmt.Errorf("%w: unknown direction %q", ErrBadArgs, args[0])
		}
		cmd.Direction = dir
		cmd.Steps = 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 || n > 64 {
				return Command{}, fmt.Errorf("%w: steps must be 1..64", ErrBadArgs)
			}
			cmd.Steps = n
		}
	case KindWait:
		ms, err := strconv.Atoi(args[0])
		if err != nil || ms < 0 {
			return Command{}, fmt.Errorf("%w: usage %s", ErrBadArgs, def.Usage)
		}
		cmd.Wait = time.Duration(min(int64(ms), maxWait.Milliseconds())) * time.Millisecond
	}
	return cmd, nil
}

// parseDirection accepts compass and arrow names and fixes one-letter typos
// in the long forms.
func parseDirection(word string) (world.Direction, bool) {
	if mapped, ok := directionWords[word]; ok {
		return world.ParseDirection(mapped)
	}
	if len(word) < 3 {
		return "", false
	}
	for _, name := range []string{"up", "down", "left", "right", "north", "south", "east", "west"} {
		if levenshtein.ComputeDistance(word, name) <= 1 {
			return world.ParseDirection(directionWords[name])
		}
	}
	return "", false
}
