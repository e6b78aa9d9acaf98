package factory

import (
	"testing"

	"github.com/maisem/aoc2025"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinButtons(t *testing.T) {
	ms := sampleMachines(t)
	tests := []struct {
		m       *Machine
		want    int
		witness []int
	}{
		{m: &ms[0], want: 2, witness: []int{1, 3}},
		{m: &ms[1], want: 3, witness: []int{2, 3, 4}},
		{m: &ms[2], want: 2, witness: []int{1, 2}},
	}
	sum := 0
	for _, tt := range tests {
		got, err := MinButtons(tt.m)
		require.NoError(t, err, "%v", tt.m)
		assert.Equal(t, tt.want, got, "%v", tt.m)
		sum += got

		set, err := MinButtonSet(tt.m)
		require.NoError(t, err)
		assert.Equal(t, tt.witness, set)
		var state BitMask
		for _, b := range set {
			state = state.Xor(tt.m.Buttons[b])
		}
		assert.Equal(t, tt.m.Lights, state)
	}
	assert.Equal(t, 7, sum)
}

func TestMinButtonsNoSmallerSubset(t *testing.T) {
	for _, m := range sampleMachines(t) {
		n, err := MinButtons(&m)
		require.NoError(t, err)
		for r := 0; r < n; r++ {
			aoc.Combinations(len(m.Buttons), r, func(ix []int) bool {
				var state BitMask
				for _, b := range ix {
					state = state.Xor(m.Buttons[b])
				}
				assert.NotEqual(t, m.Lights, state, "subset %v of %v", ix, &m)
				return true
			})
		}
	}
}

func TestMinButtonsDegenerate(t *testing.T) {
	n, err := MinButtons(&Machine{})
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	// All-off lights need no presses even when buttons exist.
	n, err = MinButtons(&Machine{Buttons: []BitMask{MustMask(0)}, Joltages: []int{1}})
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	// A single button that is exactly the target.
	n, err = MinButtons(&Machine{Lights: MustMask(0, 1), Buttons: []BitMask{MustMask(0), MustMask(0, 1)}, Joltages: []int{1, 1}})
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMinButtonsUnsatisfiable(t *testing.T) {
	tests := []Machine{
		{Lights: MustMask(0), Joltages: []int{0}},
		{Lights: MustMask(0), Buttons: []BitMask{MustMask(1)}, Joltages: []int{0, 0}},
		{Lights: MustMask(0), Buttons: []BitMask{MustMask(0, 1), MustMask(1, 2), MustMask(0, 2)}, Joltages: []int{0, 0, 0}},
	}
	for _, m := range tests {
		n, err := MinButtons(&m)
		assert.ErrorIs(t, err, ErrUnsatisfiable, "%v", &m)
		assert.Zero(t, n)
	}
}

func TestMinButtonsRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		m    Machine
	}{
		// Without validation this would report 1 button.
		{"lights out of range", Machine{Lights: MustMask(5), Buttons: []BitMask{MustMask(5)}, Joltages: []int{1}}},
		{"button out of range", Machine{Lights: MustMask(0), Buttons: []BitMask{MustMask(0, 3)}, Joltages: []int{1, 1}}},
		{"short weights", Machine{Lights: MustMask(0), Buttons: []BitMask{MustMask(0, 1)}, Joltages: []int{1, 1}, Weights: [][]int{{1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := MinButtons(&tt.m)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Zero(t, n)

			set, err := MinButtonSet(&tt.m)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, set)
		})
	}
}
