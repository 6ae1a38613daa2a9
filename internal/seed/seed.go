// Package seed produces generation-0 rows, either from a named preset or by
// decoding a literal supplied on the command line.
package seed

import (
	"errors"
	"fmt"
	"sort"

	"eca/internal/core"
	"eca/internal/sims/elementary"
	pcore "eca/pkg/core"
)

// ErrInvalid is wrapped by every error this package returns.
var ErrInvalid = errors.New("invalid initial state")

// Error reports a preset or literal that cannot produce a valid row.
type Error struct {
	Input  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalid, e.Input, e.Reason)
}

func (e *Error) Unwrap() error { return ErrInvalid }

// Preset builds a row of the given width. rng is only consulted by presets
// that need randomness.
type Preset func(width int, rng *pcore.RNG) []uint8

var presets = map[string]Preset{}

// Register adds a preset under the provided name.
func Register(name string, p Preset) {
	if name == "" || p == nil {
		return
	}
	presets[name] = p
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds a row from the named preset.
func Generate(name string, width int, seed int64) ([]uint8, error) {
	p, ok := presets[name]
	if !ok {
		return nil, &Error{Input: name, Reason: fmt.Sprintf("unknown preset (want one of %v)", Presets())}
	}
	if width < elementary.MinWidth {
		return nil, &Error{Input: name, Reason: fmt.Sprintf("width %d below minimum %d", width, elementary.MinWidth)}
	}
	return p(width, pcore.NewRNG(seed)), nil
}

func init() {
	Register("center", func(width int, _ *pcore.RNG) []uint8 {
		row := make([]uint8, width)
		row[width/2] = core.Alive
		return row
	})
	Register("ends", func(width int, _ *pcore.RNG) []uint8 {
		row := make([]uint8, width)
		row[0] = core.Alive
		row[width-1] = core.Alive
		return row
	})
	Register("alternating", func(width int, _ *pcore.RNG) []uint8 {
		row := make([]uint8, width)
		for i := range row {
			row[i] = uint8(i % 2)
		}
		return row
	})
	Register("random", func(width int, rng *pcore.RNG) []uint8 {
		row := make([]uint8, width)
		pcore.FillBinary(rng.Source(), row)
		return row
	})
}
