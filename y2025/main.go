package main

import (
	"bytes"
	_ "embed"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/factory"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) machines() []factory.Machine {
	return aoc.MustGet(factory.ParseMachines(bytes.NewReader(s.Input())))
}

func (s solver) newSolver() *factory.Solver {
	return &factory.Solver{
		Workers: s.Workers,
		Logf:    s.Debugf,
		Progress: func(done, total int) {
			s.Logf("%d/%d machines", done, total)
		},
	}
}

/*
want=7

[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
*/
func (s solver) D10p1() any {
	return aoc.MustGet(s.newSolver().SumMinButtons(s.Context(), s.machines()))
}

// want=33
func (s solver) D10p2() any {
	return aoc.MustGet(s.newSolver().SumMinPresses(s.Context(), s.machines()))
}
