package factory

import (
	"math"

	"github.com/maisem/aoc2025"
)

// DefaultBound is the recommended per-button bound for MinPresses. A free
// button b can never be pressed more than Joltages[i]/Weight(b, i) times for
// any indicator i it adds to, so the largest such cap over the free buttons
// of s never cuts off the optimum. A free button that adds to no indicator
// is capped at 0.
func DefaultBound(m *Machine, s *System) int {
	bound := 0
	for _, b := range s.Independent {
		limit := -1
		for i, j := range m.Joltages {
			if w := m.Weight(b, i); w > 0 && (limit < 0 || j/w < limit) {
				limit = j / w
			}
		}
		bound = max(bound, limit)
	}
	return bound
}

// SpreadBound spreads the sum of m's joltages evenly over the free buttons
// of s. It is usually tighter than DefaultBound but can be too small: the
// search then reports no solution or a total larger than the optimum.
func SpreadBound(m *Machine, s *System) int {
	return aoc.Sum(m.Joltages...) / max(1, len(s.Independent))
}

// MinPresses returns the fewest total button presses that bring every
// joltage counter of the reduced system s to its target, trying 0 through
// bound (inclusive) presses for each free button. ok is false if no
// assignment within bound works.
func MinPresses(s *System, bound int) (total int, ok bool) {
	_, total, ok = Solve(s, bound)
	return total, ok
}

// Solve is like MinPresses but also returns the press count of every button,
// indexed like the machine's buttons.
func Solve(s *System, bound int) (presses []int, total int, ok bool) {
	if !s.Consistent() {
		return nil, 0, false
	}
	sr := newSearcher(s, bound)
	sr.search(0, 0)
	if sr.best == math.MaxInt {
		return nil, 0, false
	}
	presses = make([]int, s.Cols)
	for k, b := range s.Independent {
		presses[b] = sr.bestFree[k]
	}
	for k, b := range s.Dependent {
		presses[b] = sr.bestDep[k]
	}
	return presses, sr.best, true
}

// searcher is a depth-first branch and bound over the free buttons. All
// buffers are allocated up front; the recursion does not allocate.
type searcher struct {
	bound int
	nFree int

	coef []float64 // coef[k*nFree+j]: weight of free button j in dependent row k
	rhs  []float64 // rhs[k]: target of dependent row k

	free []int // current free assignment
	dep  []int // dependent values derived from free

	best     int
	bestFree []int
	bestDep  []int
}

func newSearcher(s *System, bound int) *searcher {
	nDep, nFree := len(s.Dependent), len(s.Independent)
	sr := &searcher{
		bound:    bound,
		nFree:    nFree,
		coef:     make([]float64, nDep*nFree),
		rhs:      make([]float64, nDep),
		free:     make([]int, nFree),
		dep:      make([]int, nDep),
		best:     math.MaxInt,
		bestFree: make([]int, nFree),
		bestDep:  make([]int, nDep),
	}
	for k := range s.Dependent {
		row := s.Matrix[k]
		sr.rhs[k] = row[s.Cols]
		for j, c := range s.Independent {
			sr.coef[k*nFree+j] = row[c]
		}
	}
	return sr
}

// search assigns free[idx:], given that free[:idx] sum to sofar.
func (sr *searcher) search(idx, sofar int) {
	if idx == sr.nFree {
		total, ok := sr.derive(sofar)
		if ok && total < sr.best {
			sr.best = total
			copy(sr.bestFree, sr.free)
			copy(sr.bestDep, sr.dep)
		}
		return
	}
	for v := 0; v <= sr.bound; v++ {
		if sofar+v >= sr.best {
			// Presses are never negative, so the total only grows.
			break
		}
		sr.free[idx] = v
		sr.search(idx+1, sofar+v)
	}
	sr.free[idx] = 0
}

// derive computes the dependent presses for the current free assignment and
// returns the total. ok is false if any dependent press count is negative or
// not an integer.
func (sr *searcher) derive(freeSum int) (total int, ok bool) {
	total = freeSum
	for k := range sr.dep {
		v := sr.rhs[k]
		row := sr.coef[k*sr.nFree : (k+1)*sr.nFree]
		for j, c := range row {
			v -= c * float64(sr.free[j])
		}
		if v < -Epsilon {
			return 0, false
		}
		r := math.Round(v)
		if aoc.AbsDiff(v, r) > Epsilon {
			return 0, false
		}
		sr.dep[k] = int(r)
		total += int(r)
	}
	return total, true
}
