package calculator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type WordsResult struct {
	Input     int64  `json:"input_number"`
	Formatted string `json:"formatted"`
	InWords   string `json:"in_words"`
}

var units = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// scales are ordered largest first; anything at or above a trillion is
// spelled as a count of trillions.
var scales = [...]struct {
	value uint64
	name  string
}{
	{1_000_000_000_000, "Trillion"},
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

var numberPrinter = message.NewPrinter(language.English)

// NumberToWords spells n in English banking style, e.g. "One Thousand Five Only".
func NumberToWords(n int64) WordsResult {
	return WordsResult{
		Input:     n,
		Formatted: numberPrinter.Sprintf("%d", n),
		InWords:   Spell(n) + " Only",
	}
}

// Spell returns the English words for n.
func Spell(n int64) string {
	switch {
	case n == 0:
		return "Zero"
	case n < 0:
		// uint64(-n) is the magnitude even for math.MinInt64.
		return "Minus " + spell(uint64(-n))
	default:
		return spell(uint64(n))
	}
}

func spell(n uint64) string {
	switch {
	case n < 20:
		return units[n]
	case n < 100:
		return join(tens[n/10], units[n%10])
	case n < 1000:
		return join(units[n/100]+" Hundred", spell(n%100))
	}
	for _, s := range scales {
		if n >= s.value {
			return join(spell(n/s.value)+" "+s.name, spell(n%s.value))
		}
	}
	return ""
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}
