package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"eca/internal/seed"
	"eca/internal/sims/elementary"
	"eca/internal/survey"
)

func main() {
	from := flag.Int("from", 0, "first rule to survey")
	to := flag.Int("to", 255, "last rule to survey")
	width := flag.Int("width", 101, "cells per row")
	height := flag.Int("height", 256, "generations to simulate per rule")
	wrap := flag.Bool("wrap", true, "wrap neighbors around the row edges")
	preset := flag.String("preset", "center", fmt.Sprintf("initial state preset %v", seed.Presets()))
	seedVal := flag.Int64("seed", 42, "seed for the random preset")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of longest transients to list")
	flag.Parse()

	if *from < 0 || *to > 255 || *from > *to {
		log.Fatalf("invalid rule range %d-%d: want 0 <= from <= to <= 255", *from, *to)
	}
	if *height < 1 {
		log.Fatalf("invalid -height %d: must be at least 1", *height)
	}
	initial, err := seed.Generate(*preset, *width, *seedVal)
	if err != nil {
		log.Fatal(err)
	}
	boundary := elementary.ZeroPadded
	if *wrap {
		boundary = elementary.Wrapping
	}

	var rules []elementary.Rule
	for r := *from; r <= *to; r++ {
		rules = append(rules, elementary.Rule(r))
	}

	fmt.Printf("Surveying %d rules (%d workers, %d generations, width %d, %s boundary)\n",
		len(rules), *workers, *height, *width, boundary)

	start := time.Now()
	all := survey.Sweep(rules, initial, *height, boundary, *workers)
	elapsed := time.Since(start)

	counts := map[string]int{}
	fmt.Printf("\n%4s  %-9s  %9s  %6s  %5s  %5s\n", "rule", "class", "transient", "period", "final", "peak")
	for _, st := range all {
		counts[st.Class()]++
		fmt.Printf("%4d  %-9s  %9d  %6d  %5.2f  %5.2f\n",
			st.Rule, st.Class(), st.Transient, st.Period, st.FinalDensity, st.PeakDensity)
	}

	fmt.Printf("\nextinct=%d fixed=%d periodic=%d aperiodic=%d (elapsed %s)\n",
		counts["extinct"], counts["fixed"], counts["periodic"], counts["aperiodic"], elapsed.Round(time.Millisecond))

	cycled := make([]survey.Stats, 0, len(all))
	for _, st := range all {
		if st.Period > 0 {
			cycled = append(cycled, st)
		}
	}
	sort.SliceStable(cycled, func(i, j int) bool { return cycled[i].Transient > cycled[j].Transient })
	fmt.Printf("\nLongest transients before a cycle:\n")
	for i := 0; i < len(cycled) && i < *top; i++ {
		st := cycled[i]
		fmt.Printf("%2d) rule %d (%s) transient=%d period=%d\n", i+1, st.Rule, st.Rule.Binary(), st.Transient, st.Period)
	}
}
