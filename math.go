package aoc

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// NearZero reports whether |x| is within eps of zero.
func NearZero[T constraints.Float](x, eps T) bool {
	return AbsDiff(x, 0) < eps
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// IntErr is like Int but returns the parse error instead of panicking.
func IntErr(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// IntList parses a separator-delimited list of ints, such as "1,3,4".
func IntList(s, sep string) ([]int, error) {
	fields := strings.Split(s, sep)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := IntErr(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Combinations calls f with every r-combination of the indices 0..n-1, in
// lexicographic order. The ix slice is reused between calls; f must copy it
// to keep it. Enumeration stops as soon as f returns false.
//
// r == 0 yields a single empty combination. r > n yields nothing.
func Combinations(n, r int, f func(ix []int) (keepGoing bool)) {
	if r < 0 || r > n {
		return
	}
	ix := make([]int, r)
	for i := range ix {
		ix[i] = i
	}
	for {
		if !f(ix) {
			return
		}
		i := r - 1
		for i >= 0 && ix[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		ix[i]++
		for j := i + 1; j < r; j++ {
			ix[j] = ix[j-1] + 1
		}
	}
}
