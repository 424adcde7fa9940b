package world

type TileKind string

const (
	TileSky   TileKind = "sky"
	TileGrass TileKind = "grass"
	TileWater TileKind = "water"
)

func (k TileKind) Walkable() bool {
	return k == TileGrass || k == TileWater
}

type Tile struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Kind TileKind `json:"kind"`
}
