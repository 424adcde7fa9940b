package farm

import (
	"time"

	"islandfarm/internal/domain/world"
)

// Player is the farmer's body: a pixel position, a facing and the remaining
// time of the current tool pose.
type Player struct {
	Position world.Point
	Facing   world.Direction
	PoseTool Tool
	poseLeft time.Duration
}

func NewPlayer(at world.Point) *Player {
	return &Player{Position: at, Facing: world.DirDown}
}

func (p *Player) Posing() bool {
	return p.poseLeft > 0
}

func (p *Player) PoseRemaining() time.Duration {
	return p.poseLeft
}

func (p *Player) StartPose(tool Tool, d time.Duration) {
	if d <= 0 {
		return
	}
	p.PoseTool = tool
	p.poseLeft = d
}

// Tick runs the pose down. It is driven by the same clock as the field.
func (p *Player) Tick(delta time.Duration) {
	if p.poseLeft <= 0 || delta <= 0 {
		return
	}
	p.poseLeft -= delta
	if p.poseLeft <= 0 {
		p.poseLeft = 0
		p.PoseTool = ""
	}
}

// Move steps the player speed pixels in dir. The step is clamped to the map
// and accepted when any corner of the hitbox lands on a walkable tile.
// A player in a tool pose does not move or turn.
func (p *Player) Move(dir world.Direction, grid *world.Grid, speed, size float64) bool {
	if p.Posing() {
		return false
	}
	next := p.Position
	switch dir {
	case world.DirUp:
		next.Y = max(0, p.Position.Y-speed)
	case world.DirDown:
		next.Y = min(grid.PixelHeight()-size, p.Position.Y+speed)
	case world.DirLeft:
		next.X = max(0, p.Position.X-speed)
	case world.DirRight:
		next.X = min(grid.PixelWidth()-size, p.Position.X+speed)
	default:
		return false
	}
	p.Facing = dir
	if !canStand(grid, next, size) {
		return false
	}
	p.Position = next
	return true
}

func canStand(grid *world.Grid, at world.Point, size float64) bool {
	corners := [...]world.Point{
		at,
		at.Add(size-1, 0),
		at.Add(0, size-1),
		at.Add(size-1, size-1),
	}
	for _, c := range corners {
		if grid.IsWalkableAt(c) {
			return true
		}
	}
	return false
}
