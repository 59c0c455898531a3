// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mathutil provides integer helpers: factorial, greatest common
// divisor, least common multiple and primality testing.
package mathutil

import (
	"errors"
	"math/bits"
)

// MaxFactorial is the largest n for which n! fits in a uint64.
const MaxFactorial = 20

// ErrFactorialOverflow is returned by Factorial for n > MaxFactorial.
var ErrFactorialOverflow = errors.New("factorial input too large (max 20)")

// Factorial returns n!. It returns ErrFactorialOverflow rather than
// an incorrect result for n > MaxFactorial.
func Factorial(n uint64) (uint64, error) {
	if n > MaxFactorial {
		return 0, ErrFactorialOverflow
	}
	f := uint64(1)
	for i := uint64(2); i <= n; i++ {
		f *= i
	}
	return f, nil
}

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(0, b) is b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// The result wraps if it does not fit in a uint64.
func LCM(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// IsPrime returns true if n is prime.
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}
	limit := isqrt(n)
	for i := uint64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	// Start from a power of two that is >= sqrt(n) and apply Newton's
	// method, which decreases monotonically to the floor.
	x := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		y := (x + n/x) / 2
		if y >= x {
			return x
		}
		x = y
	}
}
