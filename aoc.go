// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from bradfitz/aoc)
package aoc

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
)

var log = logrus.New()

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without an input
// reuses the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			if s, ok := parseSample(c.Text); ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is the handle a solver uses to get at its input. It is embedded
// (as *Puzzle) in the solver struct passed to Run.
type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	// Workers is the parallelism solvers should use; 0 means GOMAXPROCS.
	Workers int

	ctx     context.Context
	solver  partSolver
	samples map[string]sample
}

// Context returns the context of the current run.
func (p *Puzzle) Context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return MustGet(fileOrFetch(p.Context(),
		fmt.Sprintf("%d/%d.input", p.year, p.day),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day)))
}

// Logf logs at debug level. It satisfies tailscale.com/types/logger.Logf.
func (p *Puzzle) Logf(format string, args ...any) {
	log.WithField("day", p.day).Debugf(format, args...)
}

// Debugf is like Logf but only logs while running the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.Logf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

type partSolver struct {
	method int // index into the solver's method set
	Part   string
	Name   string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}, grouped by
// day. The methods must have the signature func() any.
func extractMethods(x any) (map[int][]partSolver, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	days := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(mn)
		if len(m) != 3 {
			continue
		}
		if _, ok := v.Method(i).Interface().(func() any); !ok {
			return nil, fmt.Errorf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(m[1])
		days[d] = append(days[d], partSolver{method: i, Part: m[2], Name: mn})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return days, nil
}

type options struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	workers    int
}

// Run runs the solvers registered on slvr, a pointer to a struct embedding
// *Puzzle. src is the source of the file declaring the solver methods; it is
// used to extract the samples.
func Run(year int, src []byte, slvr any) {
	if err := newCommand(year, src, slvr).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCommand(year int, src []byte, slvr any) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          fmt.Sprintf("aoc%d", year),
		Short:        fmt.Sprintf("Advent of Code %d solutions", year),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.debug {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(cmd.Context(), opts, year, src, slvr)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.day, "day", -1, "day to run; -1 runs all days")
	f.StringVar(&opts.part, "part", "", "part to run")
	f.BoolVar(&opts.onlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.debug, "debug", false, "debug mode")
	f.IntVar(&opts.workers, "workers", 0, "parallelism for solvers; 0 means GOMAXPROCS")
	return cmd
}

func run(ctx context.Context, opts options, year int, src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	if opts.day != -1 {
		parts, ok := days[opts.day]
		if !ok {
			return fmt.Errorf("no day %d", opts.day)
		}
		runDay(ctx, opts, slvr, year, opts.day, parts, samples)
		return nil
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		runDay(ctx, opts, slvr, year, d, days[d], samples)
		fmt.Println()
	}
	return nil
}

func runDay(ctx context.Context, opts options, slvr any, year, day int, parts []partSolver, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		Workers: Or(opts.workers, runtime.GOMAXPROCS(0)),
		ctx:     ctx,
		samples: samples,
	}
	fmt.Println("Running day", day)
	sv := reflect.ValueOf(slvr).Elem()
	sv.FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range parts {
		if opts.part != "" && ps.Part != opts.part {
			continue
		}
		p.solver = ps
		fn := sv.Method(ps.method).Interface().(func() any)
		for _, sm := range []bool{true, false} {
			if (!sm && opts.onlySample) || (sm && opts.skipSample) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
				return
			}
			fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
		}
	}
}

var session = sync.OnceValues(func() (string, error) {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return s, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(filepath.Join(home, "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("no AOC_SESSION and %w", err)
	}
	return strings.TrimSpace(string(b)), nil
})

// fileOrFetch returns the contents of filename, fetching url into it first
// if it does not exist yet.
func fileOrFetch(ctx context.Context, filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}
	body, err := fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	s, err := session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
