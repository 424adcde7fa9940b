package world

// islandLayout: 0 sky, 1 grass, 2 water.
var islandLayout = [...]string{
	"0000111111111111111000000",
	"0001111111111111111100000",
	"0011111111111111111110000",
	"0111111111111111111111000",
	"1111111111111111111111100",
	"1111111222221111111111110",
	"1111112222222111111111111",
	"1111122222222211111111111",
	"1111112222222111111111111",
	"1111111222111111111111111",
	"1111111111111111111111110",
	"1111111111111111111111100",
	"0111111111111111111111000",
	"0011111111111111111110000",
	"0001111111111111111100000",
	"0000111111111111111000000",
	"0000011111111111110000000",
	"0000000111111111000000000",
}

// ParseLayout turns rows of digits into tile kinds.
func ParseLayout(rows []string) ([][]TileKind, error) {
	out := make([][]TileKind, 0, len(rows))
	for _, row := range rows {
		kinds := make([]TileKind, 0, len(row))
		for _, r := range row {
			switch r {
			case '0':
				kinds = append(kinds, TileSky)
			case '1':
				kinds = append(kinds, TileGrass)
			case '2':
				kinds = append(kinds, TileWater)
			default:
				return nil, ErrInvalidLayout
			}
		}
		out = append(out, kinds)
	}
	return out, nil
}

// Island returns the fixed 25x18 island map.
func Island(tileSize int) *Grid {
	rows, err := ParseLayout(islandLayout[:])
	if err != nil {
		panic(err)
	}
	g, err := NewGrid(rows, tileSize)
	if err != nil {
		panic(err)
	}
	return g
}
