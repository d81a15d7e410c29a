package calculator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	passwordSymbols   = `!@#$%^&*(),.?":{}|<>`
	maxPasswordScore  = 5
)

type PasswordResult struct {
	Length       int      `json:"password_length"`
	Score        string   `json:"score"`
	Strength     string   `json:"strength"`
	Improvements []string `json:"improvements_needed,omitempty"`
	Message      string   `json:"message,omitempty"`

	Points int `json:"-"`
}

type passwordCheck struct {
	pass       func(string) bool
	suggestion string
}

var passwordChecks = []passwordCheck{
	{
		pass:       func(s string) bool { return utf8.RuneCountInString(s) >= minPasswordLength },
		suggestion: "Password is too short (minimum 8 characters required)",
	},
	{
		pass:       func(s string) bool { return containsAny(s, 'A', 'Z') },
		suggestion: "Add at least one uppercase letter (A-Z)",
	},
	{
		pass:       func(s string) bool { return containsAny(s, 'a', 'z') },
		suggestion: "Add at least one lowercase letter (a-z)",
	},
	{
		pass:       func(s string) bool { return containsAny(s, '0', '9') },
		suggestion: "Add at least one number (0-9)",
	},
	{
		pass:       func(s string) bool { return strings.ContainsAny(s, passwordSymbols) },
		suggestion: "Add at least one special character (e.g., ! @ # $)",
	},
}

// PasswordStrength scores a password against five independent checks.
func PasswordStrength(password string) PasswordResult {
	var (
		points      int
		suggestions []string
	)
	for _, check := range passwordChecks {
		if check.pass(password) {
			points++
			continue
		}
		suggestions = append(suggestions, check.suggestion)
	}

	res := PasswordResult{
		Length:       utf8.RuneCountInString(password),
		Score:        fmt.Sprintf("%d/%d", points, maxPasswordScore),
		Strength:     passwordStrengthLabel(points),
		Improvements: suggestions,
		Points:       points,
	}
	if len(suggestions) == 0 {
		res.Message = "Great password!"
	}
	return res
}

func passwordStrengthLabel(points int) string {
	switch {
	case points <= 2:
		return "Weak"
	case points <= 4:
		return "Moderate"
	default:
		return "Strong"
	}
}

func containsAny(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
