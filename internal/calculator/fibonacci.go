package calculator

import (
	"fmt"
	"math/big"
)

// DefaultFibonacciMax bounds the response size; the 1000th term already has
// 209 digits.
const DefaultFibonacciMax = 1000

// FibonacciResult carries either the sequence or an inline error message.
type FibonacciResult struct {
	Sequence []*big.Int `json:"sequence,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// Fibonacci returns the first n terms starting 0, 1, 1, 2. A non-positive n
// or one above limit yields an error payload instead of a sequence.
func Fibonacci(n, limit int) FibonacciResult {
	if limit <= 0 {
		limit = DefaultFibonacciMax
	}
	if n <= 0 {
		return FibonacciResult{Error: "n must be > 0"}
	}
	if n > limit {
		return FibonacciResult{Error: fmt.Sprintf("n must be <= %d", limit)}
	}

	seq := make([]*big.Int, 0, n)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		seq = append(seq, new(big.Int).Set(a))
		a.Add(a, b)
		a, b = b, a
	}
	return FibonacciResult{Sequence: seq}
}
