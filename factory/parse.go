package factory

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/maisem/aoc2025"
)

var (
	patternRx = regexp.MustCompile(`\[([#.]*)\]`)
	buttonRx  = regexp.MustCompile(`\(([^)]*)\)`)
	joltageRx = regexp.MustCompile(`\{([^}]*)\}`)
)

// ParseMachine parses one machine line, such as
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The pattern needs a character for every joltage; extra characters must be
// off.
func ParseMachine(line string) (Machine, error) {
	var m Machine
	pm := patternRx.FindStringSubmatch(line)
	if pm == nil {
		return m, fmt.Errorf("%w: no light pattern in %q", ErrMalformed, line)
	}
	lights, err := ParsePattern(pm[1])
	if err != nil {
		return m, err
	}
	m.Lights = lights

	jm := joltageRx.FindStringSubmatch(line)
	if jm == nil {
		return m, fmt.Errorf("%w: no joltages in %q", ErrMalformed, line)
	}
	if m.Joltages, err = aoc.IntList(jm[1], ","); err != nil {
		return m, fmt.Errorf("%w: joltages %q: %v", ErrMalformed, jm[1], err)
	}
	if len(pm[1]) < len(m.Joltages) {
		return m, fmt.Errorf("%w: pattern %q covers %d of %d indicators", ErrMalformed, pm[1], len(pm[1]), len(m.Joltages))
	}

	for _, bm := range buttonRx.FindAllStringSubmatch(line, -1) {
		ix, err := aoc.IntList(bm[1], ",")
		if err != nil {
			return m, fmt.Errorf("%w: button %q: %v", ErrMalformed, bm[1], err)
		}
		mask, err := FromIndices(ix...)
		if err != nil {
			return m, err
		}
		m.Buttons = append(m.Buttons, mask)
	}
	return m, m.Validate()
}

// ParseMachines parses one machine per line of r, skipping blank lines.
func ParseMachines(r io.Reader) ([]Machine, error) {
	var out []Machine
	s := bufio.NewScanner(r)
	for y := 1; s.Scan(); y++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		m, err := ParseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", y, err)
		}
		out = append(out, m)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func joinInts(v []int, sep string) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, sep)
}
