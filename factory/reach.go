package factory

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2025"
)

// MinButtons returns the fewest buttons that, each pressed once, turn the
// lights from all off into m.Lights. It returns ErrMalformed if m is invalid
// and ErrUnsatisfiable if no subset of the buttons works.
func MinButtons(m *Machine) (int, error) {
	set, err := MinButtonSet(m)
	return len(set), err
}

// MinButtonSet is like MinButtons but returns the indices of one smallest
// set of buttons. Subsets are tried by size, then in lexicographic order of
// button indices; the first match is returned.
//
// All-off lights need no buttons, so the result is empty in that case.
func MinButtonSet(m *Machine) ([]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Lights == 0 {
		return []int{}, nil
	}
	var buttons []int
	for r := 1; r <= len(m.Buttons); r++ {
		aoc.Combinations(len(m.Buttons), r, func(ix []int) bool {
			var state BitMask
			for _, b := range ix {
				state = state.Xor(m.Buttons[b])
			}
			if state == m.Lights {
				buttons = slices.Clone(ix)
				return false
			}
			return true
		})
		if buttons != nil {
			return buttons, nil
		}
	}
	return nil, fmt.Errorf("lights %v: %w", m.Lights, ErrUnsatisfiable)
}
