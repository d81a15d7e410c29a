package calculator

import "math"

// DefaultPrimeMax keeps trial division for the next prime well under a
// millisecond.
const DefaultPrimeMax = math.MaxInt32

type PrimeResult struct {
	Number    int64 `json:"number"`
	IsPrime   bool  `json:"isPrime"`
	NextPrime int64 `json:"nextPrime"`
}

// CheckPrime reports whether n is prime and the smallest prime greater than
// n. Inputs above limit are rejected.
func CheckPrime(n, limit int64) (PrimeResult, error) {
	if limit <= 0 {
		limit = DefaultPrimeMax
	}
	if n > limit {
		return PrimeResult{}, invalid("number", "must be at most %d", limit)
	}
	return PrimeResult{
		Number:    n,
		IsPrime:   IsPrime(n),
		NextPrime: NextPrime(n),
	}, nil
}

// IsPrime uses trial division up to the square root of n.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n int64) int64 {
	if n < 2 {
		return 2
	}
	for c := n + 1; ; c++ {
		if IsPrime(c) {
			return c
		}
	}
}
