// Package survey measures how elementary rules behave from a given start row:
// whether they die out, settle, cycle, or keep changing.
package survey

import (
	"errors"
	"sort"
	"sync"

	"eca/internal/core"
	"eca/internal/sims/elementary"
)

// Stats summarizes one run.
type Stats struct {
	Rule elementary.Rule
	// Generations is the number of generations evaluated, including generation 0.
	Generations  int
	FinalDensity float64
	PeakDensity  float64
	// Transient is the first generation of the detected cycle and Period its
	// length. Period is zero when no generation repeated.
	Transient int
	Period    int
	DiedOut   bool
}

// Class labels the run as extinct, fixed, periodic or aperiodic.
func (s Stats) Class() string {
	switch {
	case s.DiedOut:
		return "extinct"
	case s.Period == 1:
		return "fixed"
	case s.Period > 1:
		return "periodic"
	default:
		return "aperiodic"
	}
}

var errCycle = errors.New("cycle found")

// Measure runs rule from initial for up to generations generations. It stops at
// the first generation that repeats an earlier one, since every later
// generation is then determined.
func Measure(rule elementary.Rule, initial []uint8, generations int, b elementary.Boundary) Stats {
	st := Stats{Rule: rule}
	seen := make(map[string]int, max(generations, 0))
	eng := elementary.Engine{Rule: rule, Boundary: b}
	_ = eng.Stream(initial, generations, func(gen int, row []uint8) error {
		st.Generations = gen + 1
		d := density(row)
		st.FinalDensity = d
		if d > st.PeakDensity {
			st.PeakDensity = d
		}
		st.DiedOut = gen > 0 && core.AllEqual(row, core.Dead)
		key := string(row)
		if first, ok := seen[key]; ok {
			st.Transient = first
			st.Period = gen - first
			return errCycle
		}
		seen[key] = gen
		return nil
	})
	return st
}

// Sweep measures every rule concurrently and returns the results ordered by
// rule number.
func Sweep(rules []elementary.Rule, initial []uint8, generations int, b elementary.Boundary, workers int) []Stats {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan elementary.Rule)
	results := make(chan Stats)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				results <- Measure(rule, initial, generations, b)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, rule := range rules {
			jobs <- rule
		}
		close(jobs)
	}()

	all := make([]Stats, 0, len(rules))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Rule < all[j].Rule })
	return all
}

func density(row []uint8) float64 {
	if len(row) == 0 {
		return 0
	}
	alive := 0
	for _, c := range row {
		if c != 0 {
			alive++
		}
	}
	return float64(alive) / float64(len(row))
}
