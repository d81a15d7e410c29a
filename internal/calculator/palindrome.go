package calculator

import "strings"

type PalindromeResult struct {
	Value        string `json:"value"`
	IsPalindrome bool   `json:"isPalindrome"`
	Processed    string `json:"processed"`
	Reverse      string `json:"reverse"`
	Length       int    `json:"length"`
}

// Palindrome compares value with its reverse after dropping everything but
// ASCII letters and digits and lower-casing.
func Palindrome(value string) PalindromeResult {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	processed := b.String()
	reversed := reverse(processed)

	return PalindromeResult{
		Value:        value,
		IsPalindrome: processed == reversed,
		Processed:    processed,
		Reverse:      reversed,
		Length:       len(processed),
	}
}

// reverse is byte-wise; callers pass ASCII only.
func reverse(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[len(s)-1-i] = s[i]
	}
	return string(out)
}
