package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"islandfarm/internal/domain/farm"
)

func newTestShell() (*Shell, *bytes.Buffer) {
	game := farm.NewGame("shell", farm.Options{}, time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC))
	var out bytes.Buffer
	return NewShell(game, &out), &out
}

func TestShell_HarvestLoop(t *testing.T) {
	sh, out := newTestShell()
	for _, line := range []string{"till 12 9", "plant 12 9", "water 12 9", "water 12 9", "wait 8000", "wait 8000", "harvest 12 9"} {
		if sh.Exec(line) {
			t.Fatalf("%q should not quit", line)
		}
	}

	inv := sh.game.Snapshot().Inventory
	if inv[farm.ItemSeeds] != 11 || inv[farm.ItemCrops] != 1 {
		t.Fatalf("inventory=%v want 11 seeds 1 crop", inv)
	}
	for _, want := range []string{"(12,9) seeded -> growing", "(12,9) growing -> ready", "harvest (12,9): done"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestShell_ReportsRejectedTool(t *testing.T) {
	sh, out := newTestShell()
	sh.Exec("harvest 0 0")
	if !strings.Contains(out.String(), "out_of_range") {
		t.Fatalf("expected out_of_range, got %q", out.String())
	}
}

func TestShell_PoseBlocksMoveUntilWait(t *testing.T) {
	sh, out := newTestShell()
	sh.Exec("till 12 9")
	sh.Exec("move left")
	if !strings.Contains(out.String(), "still swinging the till") {
		t.Fatalf("expected pose message, got %q", out.String())
	}

	out.Reset()
	sh.Exec("wait 600")
	sh.Exec("move left 2")
	if !strings.Contains(out.String(), "moved left 2/2") {
		t.Fatalf("expected move, got %q", out.String())
	}
}

func TestShell_LookDrawsFarmerAndPlots(t *testing.T) {
	sh, out := newTestShell()
	sh.Exec("till 11 9")
	out.Reset()
	sh.Exec("look")

	lines := strings.Split(out.String(), "\n")
	row := lines[1+9]
	if !strings.HasPrefix(row, " 9 ") {
		t.Fatalf("unexpected row label: %q", row)
	}
	if got := row[3+11]; got != '=' {
		t.Fatalf("plot glyph=%q want '='", got)
	}
	if got := row[3+12]; got != '@' {
		t.Fatalf("farmer glyph=%q want '@'", got)
	}
	if !strings.Contains(out.String(), "(11,9) tilled") {
		t.Fatalf("expected plot listing, got %q", out.String())
	}
}

func TestShell_RunStopsOnQuit(t *testing.T) {
	sh, out := newTestShell()
	err := sh.Run(strings.NewReader("inv\nquit\ntill 12 9\n"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "seeds: 10  crops: 0") || !strings.Contains(out.String(), "bye") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if sh.game.Field().Len() != 0 {
		t.Fatalf("commands after quit must not run")
	}
}
