package terminal

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type CommandDef struct {
	Canonical string
	Aliases   []string
	Kind      Kind
	MinArgs   int
	MaxArgs   int
	Usage     string
}

type phrase struct {
	canonical string
	alias     string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []phrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) Register(c CommandDef) {
	c.Canonical = normalise(c.Canonical)
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c
	r.phrases = append(r.phrases, phrase{canonical: c.Canonical, alias: c.Canonical})
	for _, a := range c.Aliases {
		if n := normalise(a); n != "" {
			r.phrases = append(r.phrases, phrase{canonical: c.Canonical, alias: n})
		}
	}
}

func (r *Registry) Command(canonical string) (CommandDef, bool) {
	c, ok := r.commands[normalise(canonical)]
	return c, ok
}

// Commands lists the registered commands by name.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out
}

type candidate struct {
	Canonical string
	Alias     string
	Score     float64
}

// match scores word against every name and alias. Exact hits score 1.0
// (0.97 through an alias), prefixes of two or more letters 0.9 and close
// spellings 0.72 less 0.08 per edit.
func (r *Registry) match(word string) (candidate, []candidate) {
	if word == "" {
		return candidate{}, nil
	}
	cands := make([]candidate, 0, len(r.phrases))
	for _, p := range r.phrases {
		if word == p.alias {
			score := 1.0
			if p.alias != p.canonical {
				score = 0.97
			}
			cands = append(cands, candidate{Canonical: p.canonical, Alias: p.alias, Score: score})
			continue
		}
		if len(word) >= 2 && strings.HasPrefix(p.alias, word) {
			cands = append(cands, candidate{Canonical: p.canonical, Alias: p.alias, Score: 0.9})
			continue
		}
		if len(word) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(word, p.alias)
		if dist > levenshteinLimit(len(p.alias)) {
			continue
		}
		score := 0.72 - 0.08*float64(dist)
		if p.alias != p.canonical {
			score += 0.03
		}
		cands = append(cands, candidate{Canonical: p.canonical, Alias: p.alias, Score: score})
	}
	if len(cands) == 0 {
		return candidate{}, nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})
	best := cands[0]
	alts := make([]candidate, 0, 3)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 3 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []CommandDef{
		{Canonical: "till", Aliases: []string{"1", "hoe", "dig"}, Kind: KindTool, MinArgs: 2, MaxArgs: 2, Usage: "till X Y"},
		{Canonical: "plant", Aliases: []string{"2", "sow", "seed"}, Kind: KindTool, MinArgs: 2, MaxArgs: 2, Usage: "plant X Y"},
		{Canonical: "water", Aliases: []string{"3", "irrigate", "wet"}, Kind: KindTool, MinArgs: 2, MaxArgs: 2, Usage: "water X Y"},
		{Canonical: "harvest", Aliases: []string{"4", "reap", "pick"}, Kind: KindTool, MinArgs: 2, MaxArgs: 2, Usage: "harvest X Y"},
		{Canonical: "move", Aliases: []string{"go", "walk", "step"}, Kind: KindMove, MinArgs: 1, MaxArgs: 2, Usage: "move DIR [N]"},
		{Canonical: "wait", Aliases: []string{"pass", "idle"}, Kind: KindWait, MinArgs: 1, MaxArgs: 1, Usage: "wait MS"},
		{Canonical: "look", Aliases: []string{"l", "map"}, Kind: KindLook, Usage: "look"},
		{Canonical: "inventory", Aliases: []string{"inv", "i", "bag"}, Kind: KindInventory, Usage: "inventory"},
		{Canonical: "help", Aliases: []string{"h", "commands"}, Kind: KindHelp, Usage: "help"},
		{Canonical: "quit", Aliases: []string{"q", "exit", "bye"}, Kind: KindQuit, Usage: "quit"},
	} {
		r.Register(c)
	}
	return r
}
