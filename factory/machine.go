// Package factory solves the factory machine puzzles: each machine has a row
// of indicator lights, buttons that toggle subsets of the lights, and a
// joltage counter per light that every press of a button adds to.
//
// MinButtons answers which fewest buttons turn the lights on in the required
// pattern. Reduce and MinPresses answer the fewest total presses that bring
// every joltage counter to its exact target.
package factory

import "fmt"

// Machine is one puzzle record.
type Machine struct {
	// Lights is the target indicator pattern.
	Lights BitMask

	// Buttons are the indicators each button toggles.
	Buttons []BitMask

	// Joltages holds the target counter for each indicator. Its length is
	// the machine's indicator count.
	Joltages []int

	// Weights optionally overrides how much a press of button b adds to
	// indicator i, as Weights[b][i]. When nil, a press adds 1 to every
	// indicator the button toggles.
	Weights [][]int
}

// Indicators returns the number of indicators on the machine.
func (m *Machine) Indicators() int {
	return len(m.Joltages)
}

// Weight returns how much one press of button b adds to indicator i.
func (m *Machine) Weight(b, i int) int {
	if m.Weights != nil {
		return m.Weights[b][i]
	}
	if m.Buttons[b].Has(i) {
		return 1
	}
	return 0
}

// Validate reports whether m satisfies the solver's input contract.
func (m *Machine) Validate() error {
	n := m.Indicators()
	if n > MaxIndicators {
		return fmt.Errorf("%w: %d indicators, max %d", ErrMalformed, n, MaxIndicators)
	}
	if w := m.Lights.Width(); w > n {
		return fmt.Errorf("%w: lights %v use indicator %d of %d", ErrMalformed, m.Lights, w-1, n)
	}
	for b, mask := range m.Buttons {
		if w := mask.Width(); w > n {
			return fmt.Errorf("%w: button %d toggles indicator %d of %d", ErrMalformed, b, w-1, n)
		}
	}
	for i, j := range m.Joltages {
		if j < 0 {
			return fmt.Errorf("%w: negative joltage %d at indicator %d", ErrMalformed, j, i)
		}
	}
	if m.Weights == nil {
		return nil
	}
	if len(m.Weights) != len(m.Buttons) {
		return fmt.Errorf("%w: %d weight columns for %d buttons", ErrMalformed, len(m.Weights), len(m.Buttons))
	}
	for b, col := range m.Weights {
		if len(col) != n {
			return fmt.Errorf("%w: button %d has %d weights for %d indicators", ErrMalformed, b, len(col), n)
		}
		for i, w := range col {
			switch {
			case w < 0:
				return fmt.Errorf("%w: button %d has negative weight %d at indicator %d", ErrMalformed, b, w, i)
			case w > 0 && !m.Buttons[b].Has(i):
				return fmt.Errorf("%w: button %d weighs indicator %d it does not toggle", ErrMalformed, b, i)
			}
		}
	}
	return nil
}

func (m *Machine) String() string {
	n := m.Indicators()
	s := "[" + m.Lights.Pattern(max(n, m.Lights.Width())) + "]"
	for _, b := range m.Buttons {
		s += fmt.Sprintf(" (%s)", joinInts(b.Indices(), ","))
	}
	return s + fmt.Sprintf(" {%s}", joinInts(m.Joltages, ","))
}
