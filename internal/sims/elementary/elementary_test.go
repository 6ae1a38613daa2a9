package elementary

import (
	"slices"
	"strings"
	"testing"

	"eca/internal/core"
	pcore "eca/pkg/core"
)

func row(s string) []uint8 {
	out := make([]uint8, len(s))
	for i, c := range s {
		if c == '1' {
			out[i] = 1
		}
	}
	return out
}

func str(r []uint8) string {
	var b strings.Builder
	for _, c := range r {
		b.WriteByte('0' + c)
	}
	return b.String()
}

func randomRow(seed int64, w int) []uint8 {
	r := make([]uint8, w)
	pcore.FillBinary(pcore.NewRNG(seed).Source(), r)
	return r
}

var boundaries = []Boundary{Wrapping, ZeroPadded}

func TestRule30TruthTable(t *testing.T) {
	// 111 110 101 100 011 010 001 000 -> 0 0 0 1 1 1 1 0
	want := map[uint8]uint8{7: 0, 6: 0, 5: 0, 4: 1, 3: 1, 2: 1, 1: 1, 0: 0}
	for pattern, out := range want {
		if got := Rule(30).Output(pattern); got != out {
			t.Fatalf("rule 30 pattern %03b = %d, expected %d", pattern, got, out)
		}
	}
	if got := Rule(30).Binary(); got != "00011110" {
		t.Fatalf("rule 30 binary = %q", got)
	}
}

func TestPatternBitOrder(t *testing.T) {
	if got := Pattern(1, 0, 0); got != 4 {
		t.Fatalf("left cell must be the most significant bit, got %d", got)
	}
	if got := Pattern(0, 0, 1); got != 1 {
		t.Fatalf("right cell must be the least significant bit, got %d", got)
	}
	if got := Pattern(1, 1, 1); got != 7 {
		t.Fatalf("pattern 111 = %d", got)
	}
}

func TestNextRowRule30Wrapping(t *testing.T) {
	got := NextRow(30, row("00100"), Wrapping)
	if str(got) != "01110" {
		t.Fatalf("rule 30 from 00100 = %s, expected 01110", str(got))
	}
}

func TestNextRowRule90Sierpinski(t *testing.T) {
	want := []string{"0001000", "0010100", "0100010", "1010101"}
	for _, b := range boundaries {
		grid := Run(90, row(want[0]), len(want), b)
		for y, w := range want {
			if got := str(grid.Row(y)); got != w {
				t.Fatalf("%s: generation %d = %s, expected %s", b, y, got, w)
			}
		}
	}
}

func TestNextRowPreservesLength(t *testing.T) {
	for rule := 0; rule < 256; rule++ {
		for w := MinWidth; w <= 12; w++ {
			in := randomRow(int64(rule*100+w), w)
			for _, b := range boundaries {
				if got := len(NextRow(Rule(rule), in, b)); got != w {
					t.Fatalf("rule %d width %d %s: got length %d", rule, w, b, got)
				}
			}
		}
	}
}

func TestNextRowDeterministic(t *testing.T) {
	in := randomRow(3, 97)
	before := slices.Clone(in)
	for _, b := range boundaries {
		a := NextRow(110, in, b)
		c := NextRow(110, in, b)
		if !slices.Equal(a, c) {
			t.Fatalf("%s: repeated calls differ", b)
		}
	}
	if !slices.Equal(in, before) {
		t.Fatal("NextRow mutated its input")
	}
}

func TestAllDeadRowFollowsBitZero(t *testing.T) {
	dead := make([]uint8, 9)
	for rule := 0; rule < 256; rule++ {
		for _, b := range boundaries {
			next := NextRow(Rule(rule), dead, b)
			allDead := core.AllEqual(next, core.Dead)
			if allDead != (rule&1 == 0) {
				t.Fatalf("rule %d %s: all-dead=%v with bit0=%d", rule, b, allDead, rule&1)
			}
		}
	}
}

func TestZeroPaddedEdgesAreDead(t *testing.T) {
	alive := row("11111")
	if l, _, _ := Neighborhood(alive, 0, ZeroPadded); l != core.Dead {
		t.Fatal("left neighbor of cell 0 must be dead under zero padding")
	}
	if _, _, r := Neighborhood(alive, 4, ZeroPadded); r != core.Dead {
		t.Fatal("right neighbor of the last cell must be dead under zero padding")
	}
	if l, _, r := Neighborhood(alive, 0, Wrapping); l != core.Alive || r != core.Alive {
		t.Fatal("wrapping neighbors of cell 0 must come from the ring")
	}

	// Rule 240 copies the left neighbor, rule 170 the right one.
	if got := str(NextRow(240, alive, ZeroPadded)); got != "01111" {
		t.Fatalf("rule 240 zero padded = %s", got)
	}
	if got := str(NextRow(170, alive, ZeroPadded)); got != "11110" {
		t.Fatalf("rule 170 zero padded = %s", got)
	}
	if got := str(NextRow(240, row("00001"), Wrapping)); got != "10000" {
		t.Fatalf("rule 240 wrapping = %s", got)
	}
}

func TestSingleCellRow(t *testing.T) {
	// Under wrapping the cell is its own neighbor on both sides: pattern 111.
	if got := NextRow(128, []uint8{1}, Wrapping); got[0] != 1 {
		t.Fatalf("rule 128 wrapping single cell = %d", got[0])
	}
	// Under zero padding the pattern is 010.
	if got := NextRow(128, []uint8{1}, ZeroPadded); got[0] != 0 {
		t.Fatalf("rule 128 zero padded single cell = %d", got[0])
	}
	if got := NextRow(4, []uint8{1}, ZeroPadded); got[0] != 1 {
		t.Fatalf("rule 4 zero padded single cell = %d", got[0])
	}
	if got := NextRow(30, nil, Wrapping); len(got) != 0 {
		t.Fatalf("empty row produced %d cells", len(got))
	}
}

func TestNonBinaryCellsCountAsAlive(t *testing.T) {
	got := NextRow(30, []uint8{0, 0, 7, 0, 0}, Wrapping)
	if str(got) != "01110" {
		t.Fatalf("got %s", str(got))
	}
}

func TestRuleExtremes(t *testing.T) {
	in := randomRow(11, 33)
	for _, b := range boundaries {
		full := Run(255, in, 6, b)
		empty := Run(0, in, 6, b)
		for y := 1; y < 6; y++ {
			if !core.AllEqual(full.Row(y), core.Alive) {
				t.Fatalf("rule 255 %s generation %d not all alive", b, y)
			}
			if !core.AllEqual(empty.Row(y), core.Dead) {
				t.Fatalf("rule 0 %s generation %d not all dead", b, y)
			}
		}
	}
}

func TestRunHeights(t *testing.T) {
	in := row("0110100")
	if g := Run(30, in, 0, Wrapping); g.H != 0 || len(g.Cells()) != 0 {
		t.Fatalf("height 0 produced %d rows", g.H)
	}
	if g := Run(30, in, -4, Wrapping); g.H != 0 {
		t.Fatalf("negative height produced %d rows", g.H)
	}
	g := Run(30, in, 1, Wrapping)
	if g.H != 1 || !slices.Equal(g.Row(0), in) {
		t.Fatalf("height 1 = %v, expected [%s]", g.Cells(), str(in))
	}

	g = Run(30, in, 5, ZeroPadded)
	if g.W != len(in) || g.H != 5 {
		t.Fatalf("size = %+v", g.Size())
	}
	prev := in
	for y := 1; y < g.H; y++ {
		want := NextRow(30, prev, ZeroPadded)
		if !slices.Equal(g.Row(y), want) {
			t.Fatalf("generation %d = %s, expected %s", y, str(g.Row(y)), str(want))
		}
		prev = want
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	in := randomRow(5, 4*ParallelMinWidth+17)
	for _, b := range boundaries {
		seq := Engine{Rule: 110, Boundary: b}.Run(in, 12)
		par := Engine{Rule: 110, Boundary: b, Workers: 4}.Run(in, 12)
		if !slices.Equal(seq.Cells(), par.Cells()) {
			t.Fatalf("%s: parallel evaluation diverged", b)
		}
	}
}

func TestWorkersRespectMinimumChunk(t *testing.T) {
	e := Engine{Workers: 8}
	if got := e.workers(ParallelMinWidth - 1); got != 1 {
		t.Fatalf("narrow row used %d workers", got)
	}
	if got := e.workers(3 * ParallelMinWidth); got != 3 {
		t.Fatalf("3 chunks worth of cells used %d workers", got)
	}
	if got := e.workers(100 * ParallelMinWidth); got != 8 {
		t.Fatalf("wide row used %d workers, cap is 8", got)
	}
}

func TestStreamMatchesRun(t *testing.T) {
	in := randomRow(9, 41)
	e := Engine{Rule: 73, Boundary: ZeroPadded}
	grid := e.Run(in, 20)

	var gens []int
	err := e.Stream(in, 20, func(gen int, r []uint8) error {
		if !slices.Equal(r, grid.Row(gen)) {
			t.Fatalf("stream generation %d differs from arena", gen)
		}
		gens = append(gens, gen)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(gens) != 20 || gens[0] != 0 || gens[19] != 19 {
		t.Fatalf("stream emitted generations %v", gens)
	}
}

type stopErr struct{}

func (stopErr) Error() string { return "stop" }

func TestStreamStopsOnEmitError(t *testing.T) {
	calls := 0
	err := Engine{Rule: 30}.Stream(row("00100"), 10, func(gen int, r []uint8) error {
		calls++
		if gen == 2 {
			return stopErr{}
		}
		return nil
	})
	if _, ok := err.(stopErr); !ok {
		t.Fatalf("expected emit error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("emit called %d times after error", calls)
	}
	if err := (Engine{}).Stream(row("010"), 0, func(int, []uint8) error {
		t.Fatal("emit called for height 0")
		return nil
	}); err != nil {
		t.Fatalf("height 0: %v", err)
	}
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		in   string
		want Rule
		ok   bool
	}{
		{"30", 30, true},
		{"0", 0, true},
		{"255", 255, true},
		{"0b00011110", 30, true},
		{"0x6e", 110, true},
		{"256", 0, false},
		{"-1", 0, false},
		{"thirty", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseRule(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseRule(%q) err=%v", tc.in, err)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseRule(%q) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestParseBoundary(t *testing.T) {
	for _, b := range boundaries {
		got, err := ParseBoundary(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBoundary(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseBoundary("torus"); err == nil {
		t.Fatal("expected error for unknown boundary")
	}
}

func TestConfigSnapshot(t *testing.T) {
	snap := DefaultConfig().Snapshot()
	if got := snap.String(); got != "rule=30 boundary=wrap width=128 height=128" {
		t.Fatalf("snapshot = %q", got)
	}
}
