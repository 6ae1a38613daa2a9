package core

// Cell values. Any non-zero byte read from a row counts as alive; writers only
// ever store Dead or Alive.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Size describes the dimensions of a rendered simulation: W cells per row and
// H generations.
type Size struct {
	W int
	H int
}

// AllEqual reports whether every cell in row has the given state.
func AllEqual(row []uint8, state uint8) bool {
	for _, c := range row {
		if Bit(c) != state {
			return false
		}
	}
	return true
}

// Bit normalizes a cell value to Dead or Alive.
func Bit(c uint8) uint8 {
	if c != 0 {
		return Alive
	}
	return Dead
}
