package factory

import (
	"context"
	"fmt"
	"sync"

	"github.com/maisem/aoc2025"
	"tailscale.com/types/logger"
	"tailscale.com/util/deephash"
)

// Solver solves lists of machines in parallel and sums the answers.
// The zero value is ready to use.
type Solver struct {
	// Workers bounds the number of machines solved at once. Zero or less
	// means one goroutine per distinct machine.
	Workers int

	// Logf, if non-nil, receives per-machine debug output.
	Logf logger.Logf

	// Progress, if non-nil, is called after each machine is solved with the
	// number of machines done so far and the total. Calls are serialized.
	Progress func(done, total int)

	// Bound, if non-nil, picks the free-button bound for MinPresses.
	// It defaults to DefaultBound.
	Bound func(*Machine, *System) int
}

// SumMinButtons returns the sum of MinButtons over machines.
func (sv *Solver) SumMinButtons(ctx context.Context, machines []Machine) (int, error) {
	return sv.sum(ctx, machines, func(i int, m *Machine) (int, error) {
		n, err := MinButtons(m)
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i, err)
		}
		sv.logf("machine %d: %d buttons", i, n)
		return n, nil
	})
}

// SumMinPresses returns the sum of MinPresses over machines, using the
// solver's Bound for each.
func (sv *Solver) SumMinPresses(ctx context.Context, machines []Machine) (int, error) {
	return sv.sum(ctx, machines, func(i int, m *Machine) (int, error) {
		s, err := Reduce(m)
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i, err)
		}
		bound := sv.bound(m, s)
		n, ok := MinPresses(s, bound)
		if !ok {
			return 0, fmt.Errorf("machine %d: joltages %v with bound %d: %w", i, m.Joltages, bound, ErrUnsatisfiable)
		}
		sv.logf("machine %d: %d dependent, %d free, bound %d: %d presses", i, s.Rank(), len(s.Independent), bound, n)
		return n, nil
	})
}

func (sv *Solver) bound(m *Machine, s *System) int {
	if sv.Bound != nil {
		return sv.Bound(m, s)
	}
	return DefaultBound(m, s)
}

func (sv *Solver) logf(format string, args ...any) {
	if sv.Logf != nil {
		sv.Logf(format, args...)
	}
}

// sum validates all machines, solves each distinct one once with solve and
// adds up the results.
func (sv *Solver) sum(ctx context.Context, machines []Machine, solve func(int, *Machine) (int, error)) (int, error) {
	for i := range machines {
		if err := machines[i].Validate(); err != nil {
			return 0, fmt.Errorf("machine %d: %w", i, err)
		}
	}
	groups := dedupe(machines)
	if len(groups) < len(machines) {
		sv.logf("%d machines, %d distinct", len(machines), len(groups))
	}

	var (
		mu   sync.Mutex
		done int
	)
	res, err := aoc.ParallelMap(ctx, groups, sv.Workers, func(_ context.Context, g group) (int, error) {
		n, err := solve(g.first, &machines[g.first])
		if err != nil {
			return 0, err
		}
		if sv.Progress != nil {
			mu.Lock()
			done += g.count
			sv.Progress(done, len(machines))
			mu.Unlock()
		}
		return n * g.count, nil
	})
	if err != nil {
		return 0, err
	}
	return aoc.Sum(res...), nil
}

// group is a run of identical machines; first is the index of the first.
type group struct {
	first int
	count int
}

var hashMachine = deephash.HasherForType[Machine]()

// dedupe groups machines by content, in order of first appearance.
func dedupe(machines []Machine) []group {
	seen := make(map[deephash.Sum]int, len(machines))
	var out []group
	for i := range machines {
		h := hashMachine(&machines[i])
		if gi, ok := seen[h]; ok {
			out[gi].count++
			continue
		}
		seen[h] = len(out)
		out = append(out, group{first: i, count: 1})
	}
	return out
}
