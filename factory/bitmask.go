package factory

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxIndicators is the largest number of indicators a BitMask can hold.
const MaxIndicators = 64

// BitMask is a set of indicator lights. Bit i is indicator i.
type BitMask uint64

// ParsePattern parses an indicator pattern such as ".##.", where '#' is on
// and '.' is off. The first character is indicator 0.
func ParsePattern(s string) (BitMask, error) {
	if len(s) > MaxIndicators {
		return 0, fmt.Errorf("%w: pattern %q longer than %d", ErrMalformed, s, MaxIndicators)
	}
	var m BitMask
	for i, c := range s {
		switch c {
		case '#':
			m |= 1 << i
		case '.':
		default:
			return 0, fmt.Errorf("%w: bad pattern char %q in %q", ErrMalformed, c, s)
		}
	}
	return m, nil
}

// FromIndices returns the mask with exactly the given indicators set.
// Repeated indices are set once.
func FromIndices(ix ...int) (BitMask, error) {
	var m BitMask
	for _, i := range ix {
		if i < 0 || i >= MaxIndicators {
			return 0, fmt.Errorf("%w: indicator %d out of range", ErrMalformed, i)
		}
		m |= 1 << i
	}
	return m, nil
}

// MustMask is like FromIndices but panics on out of range indices.
func MustMask(ix ...int) BitMask {
	m, err := FromIndices(ix...)
	if err != nil {
		panic(err)
	}
	return m
}

// Xor returns the lights after toggling every indicator in o.
func (m BitMask) Xor(o BitMask) BitMask {
	return m ^ o
}

// Has reports whether indicator i is set.
func (m BitMask) Has(i int) bool {
	return i >= 0 && i < MaxIndicators && m&(1<<i) != 0
}

// Len returns the number of set indicators.
func (m BitMask) Len() int {
	return bits.OnesCount64(uint64(m))
}

// Width returns one more than the highest set indicator, or 0 for the empty
// mask.
func (m BitMask) Width() int {
	return bits.Len64(uint64(m))
}

// Indices returns the set indicators in increasing order.
func (m BitMask) Indices() []int {
	out := make([]int, 0, m.Len())
	for v := uint64(m); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}
	return out
}

// Pattern formats the first n indicators the way ParsePattern reads them.
func (m BitMask) Pattern(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if m.Has(i) {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func (m BitMask) String() string {
	return m.Pattern(m.Width())
}
