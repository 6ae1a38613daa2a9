package elementary

import (
	"errors"
	"fmt"
	"strconv"

	"eca/internal/core"
)

// MinWidth is the narrowest row accepted by configuration. The engine itself
// handles any width, but rows this narrow have no interior cells.
const MinWidth = 3

// Rule is a Wolfram rule number. Bit n of the rule is the next state of a cell
// whose neighborhood (left, center, right), read as a 3-bit number with left as
// the most significant bit, equals n. Bit 0 is the 000 neighborhood and bit 7
// the 111 neighborhood.
type Rule uint8

// Output returns the next cell state for a 3-bit neighborhood pattern.
func (r Rule) Output(pattern uint8) uint8 {
	return uint8(r>>(pattern&7)) & 1
}

// Binary returns the rule as 8 binary digits, most significant first.
func (r Rule) Binary() string {
	return fmt.Sprintf("%08b", uint8(r))
}

func (r Rule) String() string { return strconv.Itoa(int(r)) }

// ParseRule parses a rule number in decimal or with a 0b, 0o or 0x prefix.
func ParseRule(s string) (Rule, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("rule %q out of range 0-255", s)
		}
		return 0, fmt.Errorf("rule %q is not a number", s)
	}
	return Rule(v), nil
}

// Boundary selects how neighbors are found at the first and last cell.
type Boundary uint8

const (
	// Wrapping treats the row as a ring.
	Wrapping Boundary = iota
	// ZeroPadded treats cells beyond either edge as dead.
	ZeroPadded
)

func (b Boundary) String() string {
	switch b {
	case Wrapping:
		return "wrap"
	case ZeroPadded:
		return "zero"
	default:
		return "Boundary(" + strconv.Itoa(int(b)) + ")"
	}
}

// ParseBoundary accepts "wrap" or "zero".
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "wrap":
		return Wrapping, nil
	case "zero":
		return ZeroPadded, nil
	}
	return 0, fmt.Errorf("unknown boundary %q (want wrap or zero)", s)
}

// Pattern packs a neighborhood into its 3-bit index, left as the most
// significant bit.
func Pattern(left, center, right uint8) uint8 {
	return core.Bit(left)<<2 | core.Bit(center)<<1 | core.Bit(right)
}

// Neighborhood returns the normalized cells around position i of row.
func Neighborhood(row []uint8, i int, b Boundary) (left, center, right uint8) {
	w := len(row)
	center = core.Bit(row[i])
	if b == ZeroPadded {
		if i > 0 {
			left = core.Bit(row[i-1])
		}
		if i < w-1 {
			right = core.Bit(row[i+1])
		}
		return left, center, right
	}
	left = core.Bit(row[(i-1+w)%w])
	right = core.Bit(row[(i+1)%w])
	return left, center, right
}

// NextRow computes the generation following row into a fresh slice.
func NextRow(rule Rule, row []uint8, b Boundary) []uint8 {
	return Engine{Rule: rule, Boundary: b}.Next(row)
}

// Run evolves initial for height generations and returns every generation.
func Run(rule Rule, initial []uint8, height int, b Boundary) *core.ByteGrid {
	return Engine{Rule: rule, Boundary: b}.Run(initial, height)
}

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width    int
	Height   int
	Rule     Rule
	Boundary Boundary
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Rule: 30, Boundary: Wrapping}
}

// Snapshot describes the configuration for logs and captions.
func (c Config) Snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "automaton",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Value: c.Rule.String()},
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeString, Value: c.Boundary.String()},
			},
		},
		{
			Name: "image",
			Params: []core.Parameter{
				{Key: "width", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Width)},
				{Key: "height", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Height)},
			},
		},
	}}
}
