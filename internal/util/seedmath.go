package util

import (
	"hash/fnv"
	"time"
)

// CharCode returns the byte at position i of s. Negative or out-of-range
// positions wrap around the string; an empty string yields 0.
func CharCode(s string, i int) int {
	if len(s) == 0 {
		return 0
	}
	i %= len(s)
	if i < 0 {
		i += len(s)
	}
	return int(s[i])
}

// Mix sums the bytes of id at the given positions (wrapping as CharCode does).
func Mix(id string, positions ...int) int {
	sum := 0
	for _, p := range positions {
		sum += CharCode(id, p)
	}
	return sum
}

// Fold hashes every byte of id together with salt (FNV-1a) into a
// non-negative int. Ids sharing a prefix still fold to unrelated values.
func Fold(id string, salt int) int {
	h := fnv.New32a()
	h.Write([]byte(id))
	h.Write([]byte{byte(salt)})
	return int(h.Sum32() >> 1)
}

// Pick maps an identifier and a loop index onto [0, n). The same inputs
// always select the same slot; offset picks an independent sequence for
// each field drawn from the same id.
func Pick(id string, offset, step, index, n int) int {
	if n <= 0 {
		return 0
	}
	return mod(Fold(id, offset)+index*step, n)
}

// Variance maps seed onto the integer range [-span, span].
func Variance(seed, span int) int {
	if span <= 0 {
		return 0
	}
	return mod(seed, 2*span+1) - span
}

// IsEven reports whether the first byte of id is even.
func IsEven(id string) bool {
	return CharCode(id, 0)%2 == 0
}

// DateSeed derives a reproducible seed from a calendar date: day of month
// plus the 1-based month times 31.
func DateSeed(t time.Time) int64 {
	return int64(t.Day() + int(t.Month())*31)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
