package factory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
`

func pattern(t testing.TB, s string) BitMask {
	t.Helper()
	m, err := ParsePattern(s)
	require.NoError(t, err)
	return m
}

func sampleMachines(t testing.TB) []Machine {
	t.Helper()
	return []Machine{
		{
			Lights:   pattern(t, ".##."),
			Buttons:  []BitMask{MustMask(3), MustMask(1, 3), MustMask(2), MustMask(2, 3), MustMask(0, 2), MustMask(0, 1)},
			Joltages: []int{3, 5, 4, 7},
		},
		{
			Lights:   pattern(t, "...#."),
			Buttons:  []BitMask{MustMask(0, 2, 3, 4), MustMask(2, 3), MustMask(0, 4), MustMask(0, 1, 2), MustMask(1, 2, 3, 4)},
			Joltages: []int{7, 5, 12, 7, 2},
		},
		{
			Lights:   pattern(t, ".###.#"),
			Buttons:  []BitMask{MustMask(0, 1, 2, 3, 4), MustMask(0, 3, 4), MustMask(0, 1, 2, 4, 5), MustMask(1, 2)},
			Joltages: []int{10, 11, 11, 5, 10, 5},
		},
	}
}

func TestBitMask(t *testing.T) {
	m := pattern(t, ".##.")
	assert.Equal(t, BitMask(0b0110), m)
	assert.Equal(t, MustMask(1, 2), m)
	assert.Equal(t, MustMask(1, 2, 2), m)
	assert.Equal(t, []int{1, 2}, m.Indices())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, ".##.", m.Pattern(4))
	assert.Equal(t, ".##", m.String())
	assert.True(t, m.Has(1))
	assert.False(t, m.Has(0))
	assert.False(t, m.Has(64))

	for _, m := range []BitMask{0, 1, MustMask(0, 63), pattern(t, "#.#.##")} {
		assert.Equal(t, BitMask(0), m.Xor(m), "%v xor itself", m)
		assert.Equal(t, m, m.Xor(0), "%v xor 0", m)
	}
	a, b, c := MustMask(0, 1), MustMask(1, 2), MustMask(3)
	assert.Equal(t, a.Xor(b).Xor(c), a.Xor(b.Xor(c)))
	assert.Equal(t, a.Xor(b), b.Xor(a))

	_, err := ParsePattern(".x.")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParsePattern(strings.Repeat(".", 65))
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = FromIndices(64)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Panics(t, func() { MustMask(-1) })
}

func TestParseMachines(t *testing.T) {
	got, err := ParseMachines(strings.NewReader("\n" + sampleInput + "\n"))
	require.NoError(t, err)
	assert.Equal(t, sampleMachines(t), got)

	m := sampleMachines(t)[0]
	assert.Equal(t, "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}", m.String())
}

func TestParseMachineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no pattern", "(0) {1}"},
		{"no joltages", "[#] (0)"},
		{"bad joltage", "[#] (0) {x}"},
		{"empty button", "[#] () {1}"},
		{"button out of range", "[#.] (0) (2) {1,1}"},
		{"lights out of range", "[..#] (0) {1,1}"},
		{"negative joltage", "[#] (0) {-1}"},
		{"pattern shorter than joltages", "[#] (0) (1) (2) {1,1,1,1}"},
		{"empty pattern", "[] {1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMachine(tt.line)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}

	_, err := ParseMachines(strings.NewReader(sampleInput + "[#] (5) {1}\n"))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorContains(t, err, "line 4")
}

func TestParseTrailingOffLights(t *testing.T) {
	// Lights past the indicator count are fine as long as they are off.
	m, err := ParseMachine("[...#..] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}")
	require.NoError(t, err)
	assert.Equal(t, sampleMachines(t)[1], m)
}

func TestValidateWeights(t *testing.T) {
	m := Machine{
		Buttons:  []BitMask{MustMask(0, 1), MustMask(1)},
		Joltages: []int{1, 1},
	}
	require.NoError(t, m.Validate())
	assert.Equal(t, 1, m.Weight(0, 1))
	assert.Equal(t, 0, m.Weight(1, 0))

	m.Weights = [][]int{{2, 1}, {0, 3}}
	require.NoError(t, m.Validate())
	assert.Equal(t, 3, m.Weight(1, 1))

	m.Weights = [][]int{{2, 1}}
	assert.ErrorIs(t, m.Validate(), ErrMalformed)
	m.Weights = [][]int{{2, 1}, {1, 3}}
	assert.ErrorIs(t, m.Validate(), ErrMalformed, "weight on an untoggled indicator")
	m.Weights = [][]int{{2, -1}, {0, 3}}
	assert.ErrorIs(t, m.Validate(), ErrMalformed)
	m.Weights = [][]int{{2, 1}, {0}}
	assert.ErrorIs(t, m.Validate(), ErrMalformed)
}
